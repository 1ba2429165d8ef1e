package clubstaking

// Command is one ledger operation. The set of implementations is closed.
type Command interface {
	// Name is the operation's stable identifier, used in logs and metrics.
	Name() string
	// Caller is the address that submitted the command.
	Caller() string
	isCommand()
}

// StakeCmd stakes Amount on Club for Staker.
type StakeCmd struct {
	Sender string
	Club   string
	Staker string
	Amount uint64
	Fees   uint64 // fee-denomination funds attached to the call
}

// BuyClubCmd buys Club for Buyer from Seller (empty for a new club).
type BuyClubCmd struct {
	Sender string
	Club   string
	Buyer  string
	Seller string
	Price  uint64
	Fees   uint64
}

// ReleaseClubCmd releases Club held by Owner.
type ReleaseClubCmd struct {
	Sender string
	Club   string
	Owner  string
}

// WithdrawCmd withdraws Amount of Staker's stake in Club.
type WithdrawCmd struct {
	Sender    string
	Club      string
	Staker    string
	Amount    uint64
	Immediate bool
	Fees      uint64
}

// ClaimStakerRewardCmd claims Staker's pending reward in Club.
type ClaimStakerRewardCmd struct {
	Sender string
	Club   string
	Staker string
}

// ClaimOwnerRewardCmd claims Owner's pending reward for Club.
type ClaimOwnerRewardCmd struct {
	Sender string
	Club   string
	Owner  string
}

// ClaimPreviousOwnerRewardCmd claims reward left over from clubs PreviousOwner sold.
type ClaimPreviousOwnerRewardCmd struct {
	Sender        string
	PreviousOwner string
}

// FundRewardPoolCmd adds Amount, sent by From through the token contract, to the reward pool.
type FundRewardPoolCmd struct {
	Sender string
	From   string
	Amount uint64
}

// DistributeRewardsCmd runs the distribution engine.
type DistributeRewardsCmd struct {
	Sender string
}

// SweepMaturedBondsCmd drops matured bonds.
type SweepMaturedBondsCmd struct {
	Sender string
}

func (StakeCmd) Name() string                    { return "stake" }
func (BuyClubCmd) Name() string                  { return "buy_club" }
func (ReleaseClubCmd) Name() string              { return "release_club" }
func (WithdrawCmd) Name() string                 { return "withdraw" }
func (ClaimStakerRewardCmd) Name() string        { return "claim_staker_reward" }
func (ClaimOwnerRewardCmd) Name() string         { return "claim_owner_reward" }
func (ClaimPreviousOwnerRewardCmd) Name() string { return "claim_previous_owner_reward" }
func (FundRewardPoolCmd) Name() string           { return "fund_reward_pool" }
func (DistributeRewardsCmd) Name() string        { return "distribute_rewards" }
func (SweepMaturedBondsCmd) Name() string        { return "sweep_matured_bonds" }

func (c StakeCmd) Caller() string                    { return c.Sender }
func (c BuyClubCmd) Caller() string                  { return c.Sender }
func (c ReleaseClubCmd) Caller() string              { return c.Sender }
func (c WithdrawCmd) Caller() string                 { return c.Sender }
func (c ClaimStakerRewardCmd) Caller() string        { return c.Sender }
func (c ClaimOwnerRewardCmd) Caller() string         { return c.Sender }
func (c ClaimPreviousOwnerRewardCmd) Caller() string { return c.Sender }
func (c FundRewardPoolCmd) Caller() string           { return c.Sender }
func (c DistributeRewardsCmd) Caller() string        { return c.Sender }
func (c SweepMaturedBondsCmd) Caller() string        { return c.Sender }

func (StakeCmd) isCommand()                    {}
func (BuyClubCmd) isCommand()                  {}
func (ReleaseClubCmd) isCommand()              {}
func (WithdrawCmd) isCommand()                 {}
func (ClaimStakerRewardCmd) isCommand()        {}
func (ClaimOwnerRewardCmd) isCommand()         {}
func (ClaimPreviousOwnerRewardCmd) isCommand() {}
func (FundRewardPoolCmd) isCommand()           {}
func (DistributeRewardsCmd) isCommand()        {}
func (SweepMaturedBondsCmd) isCommand()        {}

// suppliedFees returns the fee funds attached to cmd.
func suppliedFees(cmd Command) uint64 {
	switch c := cmd.(type) {
	case StakeCmd:
		return c.Fees
	case BuyClubCmd:
		return c.Fees
	case WithdrawCmd:
		return c.Fees
	}
	return 0
}
