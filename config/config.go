// Copyright (c) 2026 The furycontracts-sub000 developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads the club staking node configuration. The file is a
// plain "key = value" list read through viper; every key can be overridden by
// a CLUBSTAKE_<KEY> environment variable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/furysport/furycontracts-sub000/clubstaking"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CLUBSTAKE"

const (
	keyDataDir              = "datadir"
	keyLogLevel             = "loglevel"
	keyLogFile              = "logfile"
	keyDebug                = "debug"
	keySentryDSN            = "sentry_dsn"
	keyAdmin                = "admin"
	keyTokenContract        = "token_contract"
	keyClubFeeCollector     = "club_fee_collector"
	keyPlatformFeeCollector = "platform_fee_collector"
	keyClubPrice            = "club_price"
	keyOwnerPurchaseReward  = "owner_purchase_reward"
	keyBondingDuration      = "bonding_duration"
	keyLockingPeriod        = "locking_period"
	keyRewardPeriodicity    = "reward_periodicity"
	keyFirstDistribution    = "first_distribution"
	keyPlatformFeeBps       = "platform_fee_bps"
	keyTransactionFeeBps    = "transaction_fee_bps"
	keyControlFeeBps        = "control_fee_bps"
	keyOracleURL            = "oracle_url"
	keyTokenLedgerURL       = "token_ledger_url"
	keyDistributeSchedule   = "distribute_schedule"
	keySweepSchedule        = "sweep_schedule"
	keyMetricsAddr          = "metrics_addr"
)

// Config holds the node configuration.
type Config struct {
	DataDir   string `mapstructure:"datadir"`
	LogLevel  string `mapstructure:"loglevel"`
	LogFile   string `mapstructure:"logfile"`
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`

	// Ledger parameters.
	Admin                string        `mapstructure:"admin"`
	TokenContract        string        `mapstructure:"token_contract"`
	ClubFeeCollector     string        `mapstructure:"club_fee_collector"`
	PlatformFeeCollector string        `mapstructure:"platform_fee_collector"`
	ClubPrice            uint64        `mapstructure:"club_price"`
	OwnerPurchaseReward  uint64        `mapstructure:"owner_purchase_reward"`
	BondingDuration      time.Duration `mapstructure:"bonding_duration"`
	LockingPeriod        time.Duration `mapstructure:"locking_period"`
	RewardPeriodicity    time.Duration `mapstructure:"reward_periodicity"`
	FirstDistribution    string        `mapstructure:"first_distribution"` // RFC3339, empty means immediately
	PlatformFeeBps       uint64        `mapstructure:"platform_fee_bps"`
	TransactionFeeBps    uint64        `mapstructure:"transaction_fee_bps"`
	ControlFeeBps        uint64        `mapstructure:"control_fee_bps"`

	// Collaborators. Empty URLs disable fee gating and instruction dispatch.
	OracleURL      string `mapstructure:"oracle_url"`
	TokenLedgerURL string `mapstructure:"token_ledger_url"`

	// Keeper.
	DistributeSchedule string `mapstructure:"distribute_schedule"`
	SweepSchedule      string `mapstructure:"sweep_schedule"`
	MetricsAddr        string `mapstructure:"metrics_addr"`
}

// DefaultDataDir returns the default data directory (~/.clubstake).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clubstake"
	}
	return filepath.Join(home, ".clubstake")
}

// ConfigPath returns the configuration file path inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// LedgerPath returns the bbolt ledger file path inside dataDir.
func LedgerPath(dataDir string) string {
	return filepath.Join(dataDir, "ledger.db")
}

// DefaultConfig returns a Config populated with default values. Ledger
// addresses and the club price have no default.
func DefaultConfig() Config {
	p := clubstaking.DefaultParams()
	return Config{
		DataDir:            DefaultDataDir(),
		LogLevel:           "info",
		BondingDuration:    p.BondingDuration,
		LockingPeriod:      p.LockingPeriod,
		RewardPeriodicity:  p.RewardPeriodicity,
		PlatformFeeBps:     p.PlatformFeeBps,
		TransactionFeeBps:  p.TransactionFeeBps,
		ControlFeeBps:      p.ControlFeeBps,
		DistributeSchedule: "@every 1m",
		SweepSchedule:      "@every 10m",
	}
}

// LoadConfig reads the configuration file at path, layering it over
// DefaultConfig and under environment overrides. Unknown keys are ignored.
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return unmarshal(v)
}

// LoadEnv returns DefaultConfig with environment overrides applied.
func LoadEnv() (Config, error) {
	return unmarshal(newViper())
}

// SaveConfig writes cfg to path, creating parent directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# clubstake configuration\n")
	for _, kv := range cfg.pairs() {
		fmt.Fprintf(&b, "%s = %s\n", kv[0], kv[1])
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Params converts the ledger section to clubstaking parameters.
func (c Config) Params() clubstaking.Params {
	return clubstaking.Params{
		Admin:                c.Admin,
		TokenContract:        c.TokenContract,
		ClubFeeCollector:     c.ClubFeeCollector,
		PlatformFeeCollector: c.PlatformFeeCollector,
		ClubPrice:            c.ClubPrice,
		OwnerPurchaseReward:  c.OwnerPurchaseReward,
		LockingPeriod:        c.LockingPeriod,
		BondingDuration:      c.BondingDuration,
		RewardPeriodicity:    c.RewardPeriodicity,
		PlatformFeeBps:       c.PlatformFeeBps,
		TransactionFeeBps:    c.TransactionFeeBps,
		ControlFeeBps:        c.ControlFeeBps,
	}
}

// FirstDistributionTime parses FirstDistribution. An empty value yields the zero time.
func (c Config) FirstDistributionTime() (time.Time, error) {
	if c.FirstDistribution == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.FirstDistribution)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFirstDistribution, c.FirstDistribution)
	}
	return t, nil
}

func (c Config) pairs() [][2]string {
	u := func(n uint64) string { return strconv.FormatUint(n, 10) }
	return [][2]string{
		{keyDataDir, c.DataDir},
		{keyLogLevel, c.LogLevel},
		{keyLogFile, c.LogFile},
		{keyDebug, strconv.FormatBool(c.Debug)},
		{keySentryDSN, c.SentryDSN},
		{keyAdmin, c.Admin},
		{keyTokenContract, c.TokenContract},
		{keyClubFeeCollector, c.ClubFeeCollector},
		{keyPlatformFeeCollector, c.PlatformFeeCollector},
		{keyClubPrice, u(c.ClubPrice)},
		{keyOwnerPurchaseReward, u(c.OwnerPurchaseReward)},
		{keyBondingDuration, c.BondingDuration.String()},
		{keyLockingPeriod, c.LockingPeriod.String()},
		{keyRewardPeriodicity, c.RewardPeriodicity.String()},
		{keyFirstDistribution, c.FirstDistribution},
		{keyPlatformFeeBps, u(c.PlatformFeeBps)},
		{keyTransactionFeeBps, u(c.TransactionFeeBps)},
		{keyControlFeeBps, u(c.ControlFeeBps)},
		{keyOracleURL, c.OracleURL},
		{keyTokenLedgerURL, c.TokenLedgerURL},
		{keyDistributeSchedule, c.DistributeSchedule},
		{keySweepSchedule, c.SweepSchedule},
		{keyMetricsAddr, c.MetricsAddr},
	}
}

// newViper returns a viper instance seeded with defaults and bound to the
// CLUBSTAKE_ environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("properties")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := DefaultConfig()
	for _, kv := range def.pairs() {
		v.SetDefault(kv[0], kv[1])
		// Explicit binding lets Unmarshal see variables for keys absent from the file.
		_ = v.BindEnv(kv[0])
	}
	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
