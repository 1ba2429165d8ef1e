package clubstaking

import (
	"github.com/furysport/furycontracts-sub000/network"
)

// claimStakerReward pays out and zeroes the staker's pending reward in club.
func (e *engine) claimStakerReward(club, staker string) (uint64, []network.Instruction, error) {
	if club == "" {
		return 0, nil, ErrEmptyClubName
	}
	list, err := e.t.stakes(club)
	if err != nil {
		return 0, nil, err
	}

	var amount uint64
	found := false
	for i := range list {
		if list[i].StakerAddress != staker {
			continue
		}
		found = true
		if amount, err = checkedAdd(amount, list[i].RewardAmount); err != nil {
			return 0, nil, err
		}
		list[i].RewardAmount = 0
	}
	if !found {
		return 0, nil, ErrNotStaker
	}
	if amount == 0 {
		return 0, nil, ErrNoRewards
	}
	if err := e.t.putStakes(club, list); err != nil {
		return 0, nil, err
	}
	return amount, []network.Instruction{e.transfer(staker, amount, "staking_reward_claim")}, nil
}

// claimOwnerReward pays out and zeroes the current owner's pending reward.
func (e *engine) claimOwnerReward(club, owner string) (uint64, []network.Instruction, error) {
	o, err := e.requireOwnership(club)
	if err != nil {
		return 0, nil, err
	}
	if o.OwnerAddress != owner {
		return 0, nil, ErrNotOwner
	}
	if o.RewardAmount == 0 {
		return 0, nil, ErrNoRewards
	}
	amount := o.RewardAmount
	o.RewardAmount = 0
	if err := e.t.putOwnership(o); err != nil {
		return 0, nil, err
	}
	return amount, []network.Instruction{e.transfer(owner, amount, "owner_reward")}, nil
}

// claimPreviousOwnerReward pays out and deletes a previous owner's record.
func (e *engine) claimPreviousOwnerReward(addr string) (uint64, []network.Instruction, error) {
	prev, err := e.t.previousOwner(addr)
	if err != nil {
		return 0, nil, err
	}
	if prev == nil {
		return 0, nil, ErrNotPreviousOwner
	}
	if prev.RewardAmount == 0 {
		return 0, nil, ErrNoRewards
	}
	if err := e.t.deletePreviousOwner(addr); err != nil {
		return 0, nil, err
	}
	return prev.RewardAmount, []network.Instruction{e.transfer(addr, prev.RewardAmount, "previous_owners_reward")}, nil
}
