// Copyright (c) 2026 The furycontracts-sub000 developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidMetricsAddr indicates the metrics listen address is malformed.
	ErrInvalidMetricsAddr = errors.New("config: invalid metrics address")

	// ErrInvalidSchedule indicates a keeper cron schedule does not parse.
	ErrInvalidSchedule = errors.New("config: invalid cron schedule")

	// ErrInvalidFirstDistribution indicates first_distribution is not RFC3339.
	ErrInvalidFirstDistribution = errors.New("config: first_distribution must be an RFC3339 timestamp")

	// ErrInvalidLedgerParams indicates the ledger parameters are unusable.
	ErrInvalidLedgerParams = errors.New("config: invalid ledger parameters")
)
