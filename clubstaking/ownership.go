package clubstaking

import (
	"fmt"

	"github.com/furysport/furycontracts-sub000/network"
)

// buyClub transfers club to buyer. An existing owner must have released the
// club and must be the declared seller; any reward still pending for that
// owner moves into the previous-owner table.
func (e *engine) buyClub(payer, club, buyer, seller string, price uint64) ([]network.Instruction, error) {
	if club == "" {
		return nil, ErrEmptyClubName
	}
	if price != e.params.ClubPrice {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPriceMismatch, price, e.params.ClubPrice)
	}

	all, err := e.t.allOwnerships()
	if err != nil {
		return nil, err
	}
	for _, o := range all {
		if o.OwnerAddress == buyer {
			return nil, fmt.Errorf("%w: %s owns %s", ErrAlreadyOwner, buyer, o.ClubName)
		}
	}

	current, err := e.t.ownership(club)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if !current.Released {
			return nil, ErrNotReleased
		}
		if current.OwnerAddress != seller {
			return nil, ErrSellerMismatch
		}
		if current.RewardAmount > 0 {
			if err := e.creditPreviousOwner(current.OwnerAddress, current.RewardAmount); err != nil {
				return nil, err
			}
		}
	}

	next := &ClubOwnership{
		ClubName:       club,
		OwnerAddress:   buyer,
		StartTimestamp: e.now,
		LockingPeriod:  e.params.LockingPeriod,
		PricePaid:      price,
		RewardAmount:   e.params.OwnerPurchaseReward,
		Released:       false,
	}
	if err := e.t.putOwnership(next); err != nil {
		return nil, err
	}

	return []network.Instruction{{
		Kind:      network.KindTransferFrom,
		From:      payer,
		Recipient: e.params.ClubFeeCollector,
		Amount:    price,
		Memo:      "club_purchase",
	}}, nil
}

func (e *engine) creditPreviousOwner(addr string, reward uint64) error {
	prev, err := e.t.previousOwner(addr)
	if err != nil {
		return err
	}
	if prev == nil {
		prev = &PreviousOwnerReward{PreviousOwnerAddress: addr}
	}
	sum, err := checkedAdd(prev.RewardAmount, reward)
	if err != nil {
		return err
	}
	prev.RewardAmount = sum
	return e.t.putPreviousOwner(prev)
}

// releaseClub marks the club released once its locking period has elapsed.
func (e *engine) releaseClub(club, owner string) error {
	o, err := e.requireOwnership(club)
	if err != nil {
		return err
	}
	if o.OwnerAddress != owner {
		return ErrNotOwner
	}
	if !o.LockExpired(e.now) {
		return fmt.Errorf("%w: unlocks at %s", ErrLockingPeriod, o.StartTimestamp.Add(o.LockingPeriod))
	}
	o.Released = true
	return e.t.putOwnership(o)
}
