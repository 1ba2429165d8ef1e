package clubstaking

import (
	"fmt"
)

// stake adds amount to the staker's position in club, creating the position
// on first stake.
func (e *engine) stake(club, staker string, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if club == "" {
		return ErrEmptyClubName
	}
	o, err := e.t.ownership(club)
	if err != nil {
		return err
	}
	if o == nil {
		return fmt.Errorf("%w: %s", ErrClubNotAvailable, club)
	}

	if err := e.increaseStake(club, staker, amount); err != nil {
		return err
	}

	funds, err := e.t.stakingFunds(staker)
	if err != nil {
		return err
	}
	if funds, err = checkedAdd(funds, amount); err != nil {
		return err
	}
	return e.t.putStakingFunds(staker, funds)
}

func (e *engine) increaseStake(club, staker string, amount uint64) error {
	list, err := e.t.stakes(club)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].StakerAddress != staker {
			continue
		}
		sum, err := checkedAdd(list[i].StakedAmount, amount)
		if err != nil {
			return err
		}
		list[i].StakedAmount = sum
		return e.t.putStakes(club, list)
	}
	list = append(list, StakeRecord{
		ClubName:       club,
		StakerAddress:  staker,
		StakedAmount:   amount,
		StartTimestamp: e.now,
	})
	return e.t.putStakes(club, list)
}

// decreaseStake removes amount from the staker's live stake and drops the
// record when it reaches zero. A zero amount is a no-op even without a record.
func (e *engine) decreaseStake(club, staker string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	list, err := e.t.stakes(club)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].StakerAddress != staker {
			continue
		}
		if list[i].StakedAmount < amount {
			return fmt.Errorf("%w: staked %d, requested %d", ErrExcessWithdrawal, list[i].StakedAmount, amount)
		}
		list[i].StakedAmount -= amount
		if list[i].StakedAmount == 0 {
			list = append(list[:i], list[i+1:]...)
		}
		return e.t.putStakes(club, list)
	}
	return fmt.Errorf("%w: no stake for %s in %s", ErrExcessWithdrawal, staker, club)
}
