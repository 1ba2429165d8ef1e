package clubstaking

import (
	"time"
)

// ClubOwnership is the live ownership record of a club.
// While Released is false, OwnerAddress is authoritative and nobody else may
// acquire the club.
type ClubOwnership struct {
	ClubName       string        `json:"club_name"`
	OwnerAddress   string        `json:"owner_address"`
	StartTimestamp time.Time     `json:"start_timestamp"`
	LockingPeriod  time.Duration `json:"locking_period"`
	PricePaid      uint64        `json:"price_paid"`
	RewardAmount   uint64        `json:"reward_amount"`
	Released       bool          `json:"owner_released"`
}

// LockExpired reports whether the locking period measured from acquisition has elapsed.
func (o *ClubOwnership) LockExpired(now time.Time) bool {
	return !now.Add(-o.LockingPeriod).Before(o.StartTimestamp)
}

// StakeRecord is one staker's position in a club. A club holds at most one
// record per staker and never keeps a record at zero stake.
type StakeRecord struct {
	ClubName       string    `json:"club_name"`
	StakerAddress  string    `json:"staker_address"`
	StakedAmount   uint64    `json:"staked_amount"`
	RewardAmount   uint64    `json:"reward_amount"`
	StartTimestamp time.Time `json:"staking_start_timestamp"`
}

// BondRecord is principal removed from live stake that is still inside its cooldown.
type BondRecord struct {
	ClubName       string        `json:"club_name"`
	BonderAddress  string        `json:"bonder_address"`
	BondedAmount   uint64        `json:"bonded_amount"`
	StartTimestamp time.Time     `json:"bonding_start_timestamp"`
	Duration       time.Duration `json:"bonding_duration"`
}

// Matured reports whether now minus the bond duration has reached the bond start.
func (b *BondRecord) Matured(now time.Time) bool {
	return !now.Add(-b.Duration).Before(b.StartTimestamp)
}

// PreviousOwnerReward is reward still owed to an address that no longer owns a club.
type PreviousOwnerReward struct {
	PreviousOwnerAddress string `json:"previous_owner_address"`
	RewardAmount         uint64 `json:"reward_amount"`
}

// RewardAccumulator holds reward collected since the last distribution and
// when the next distribution may run.
type RewardAccumulator struct {
	Pool             uint64    `json:"pool"`
	NextDistribution time.Time `json:"next_distribution"`
}

// ClubRank is a club and the sum of its live stake.
type ClubRank struct {
	ClubName   string `json:"club_name"`
	TotalStake uint64 `json:"total_stake"`
}

// StakingFunds is the per-staker aggregate balance. It is a sanity total only
// and is never consulted for authorization.
type StakingFunds struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}
