package keeper

import "errors"

var (
	// ErrInvalidSchedule indicates a cron expression does not parse.
	ErrInvalidSchedule = errors.New("keeper: invalid schedule")

	// ErrAlreadyRunning indicates Start was called twice.
	ErrAlreadyRunning = errors.New("keeper: already running")

	// ErrMissingAdmin indicates no admin address was configured.
	ErrMissingAdmin = errors.New("keeper: admin address is empty")
)
