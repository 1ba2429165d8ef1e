package clubstaking

import (
	"fmt"

	"github.com/furysport/furycontracts-sub000/network"
)

// Result is what a committed command produced.
type Result struct {
	Command      string                `json:"command"`
	Instructions []network.Instruction `json:"instructions,omitempty"`
	Receipts     []string              `json:"receipts,omitempty"`
	RequiredFees uint64                `json:"required_fees"`
	Withdrawal   *Withdrawal           `json:"withdrawal,omitempty"`
	Distribution *Distribution         `json:"distribution,omitempty"`
	Claimed      uint64                `json:"claimed,omitempty"`
	Swept        int                   `json:"swept,omitempty"`
	RewardPool   uint64                `json:"reward_pool,omitempty"`
}

func requireSender(sender, actor string) error {
	if sender != actor {
		return fmt.Errorf("%w: %s may not act for %s", ErrUnauthorized, sender, actor)
	}
	return nil
}

// apply runs cmd against the engine's transaction.
func (e *engine) apply(cmd Command) (*Result, error) {
	res := &Result{Command: cmd.Name()}
	var err error

	switch c := cmd.(type) {
	case StakeCmd:
		err = e.stake(c.Club, c.Staker, c.Amount)

	case BuyClubCmd:
		res.Instructions, err = e.buyClub(c.Sender, c.Club, c.Buyer, c.Seller, c.Price)

	case ReleaseClubCmd:
		if err = requireSender(c.Sender, c.Owner); err == nil {
			err = e.releaseClub(c.Club, c.Owner)
		}

	case WithdrawCmd:
		if err = requireSender(c.Sender, c.Staker); err != nil {
			break
		}
		if c.Amount == 0 {
			err = ErrZeroAmount
			break
		}
		if _, err = e.requireOwnership(c.Club); err != nil {
			break
		}
		if c.Immediate {
			res.Withdrawal, res.Instructions, err = e.withdrawImmediate(c.Club, c.Staker, c.Amount)
		} else {
			err = e.withdrawDeferred(c.Club, c.Staker, c.Amount)
		}

	case ClaimStakerRewardCmd:
		if err = requireSender(c.Sender, c.Staker); err == nil {
			res.Claimed, res.Instructions, err = e.claimStakerReward(c.Club, c.Staker)
		}

	case ClaimOwnerRewardCmd:
		if err = requireSender(c.Sender, c.Owner); err == nil {
			res.Claimed, res.Instructions, err = e.claimOwnerReward(c.Club, c.Owner)
		}

	case ClaimPreviousOwnerRewardCmd:
		if err = requireSender(c.Sender, c.PreviousOwner); err == nil {
			res.Claimed, res.Instructions, err = e.claimPreviousOwnerReward(c.PreviousOwner)
		}

	case FundRewardPoolCmd:
		if err = requireSender(c.Sender, e.params.TokenContract); err == nil {
			res.RewardPool, err = e.fundRewardPool(c.Amount)
		}

	case DistributeRewardsCmd:
		if err = requireSender(c.Sender, e.params.Admin); err == nil {
			res.Distribution, err = e.distributeRewards()
		}

	case SweepMaturedBondsCmd:
		if err = requireSender(c.Sender, e.params.Admin); err == nil {
			res.Swept, err = e.sweepMaturedBonds()
		}

	default:
		return nil, fmt.Errorf("clubstaking: unhandled command %T", cmd)
	}

	if err != nil {
		return nil, err
	}
	return res, nil
}
