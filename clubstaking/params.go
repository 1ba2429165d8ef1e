package clubstaking

import (
	"fmt"
	"time"
)

// Params are the ledger's fixed parameters.
type Params struct {
	Admin                string        // may distribute rewards and sweep bonds
	TokenContract        string        // only sender allowed to fund the reward pool
	ClubFeeCollector     string        // receives the club price on purchase
	PlatformFeeCollector string        // receives fee-denomination funds attached to calls
	ClubPrice            uint64        // exact price of a club
	OwnerPurchaseReward  uint64        // owner reward a new owner starts with
	LockingPeriod        time.Duration // minimum ownership time before release
	BondingDuration      time.Duration // cooldown of a deferred withdrawal
	RewardPeriodicity    time.Duration // interval between distributions
	PlatformFeeBps       uint64
	TransactionFeeBps    uint64
	ControlFeeBps        uint64
}

// DefaultParams returns parameters with the standard durations and fees set.
// Addresses and the club price are left empty.
func DefaultParams() Params {
	return Params{
		BondingDuration:   5 * 24 * time.Hour,
		RewardPeriodicity: 24 * time.Hour,
		PlatformFeeBps:    100,
		TransactionFeeBps: 30,
		ControlFeeBps:     50,
	}
}

// Validate checks that the parameters are usable.
func (p Params) Validate() error {
	switch {
	case p.Admin == "":
		return fmt.Errorf("%w: admin address is empty", ErrInvalidParams)
	case p.TokenContract == "":
		return fmt.Errorf("%w: token contract is empty", ErrInvalidParams)
	case p.ClubFeeCollector == "":
		return fmt.Errorf("%w: club fee collector is empty", ErrInvalidParams)
	case p.ClubPrice == 0:
		return fmt.Errorf("%w: club price must be positive", ErrInvalidParams)
	case p.RewardPeriodicity <= 0:
		return fmt.Errorf("%w: reward periodicity must be positive", ErrInvalidParams)
	case p.BondingDuration < 0, p.LockingPeriod < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidParams)
	case p.PlatformFeeBps+p.TransactionFeeBps+p.ControlFeeBps > 10000:
		return fmt.Errorf("%w: fee basis points exceed 10000", ErrInvalidParams)
	}
	return nil
}
