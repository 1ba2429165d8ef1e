package clubstaking

import (
	"fmt"
	"sort"

	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/revshare"
)

// WithdrawBurnPercent is the share of a withdrawal not covered by matured
// bonds that is burned instead of paid out.
const WithdrawBurnPercent = 10

// Withdrawal summarises an immediate withdrawal.
type Withdrawal struct {
	Amount   uint64 `json:"amount"`
	Unbonded uint64 `json:"unbonded_amount"` // drawn from matured bonds
	Bonded   uint64 `json:"bonded_amount"`   // drawn from bonds still in cooldown
	Burned   uint64 `json:"burn_amount"`
	Paid     uint64 `json:"paid_amount"`
}

// withdrawDeferred moves amount from live stake into a new bond.
func (e *engine) withdrawDeferred(club, staker string, amount uint64) error {
	if err := e.decreaseStake(club, staker, amount); err != nil {
		return err
	}
	bonds, err := e.t.bonds(club)
	if err != nil {
		return err
	}
	bonds = append(bonds, BondRecord{
		ClubName:       club,
		BonderAddress:  staker,
		BondedAmount:   amount,
		StartTimestamp: e.now,
		Duration:       e.params.BondingDuration,
	})
	return e.t.putBonds(club, bonds)
}

// withdrawImmediate pays amount out now. The staker's own bonds are consumed
// first, matured ones before immature ones, most recent first; only the part
// not covered by bonds comes out of live stake. The part not covered by
// matured bonds is charged the burn.
func (e *engine) withdrawImmediate(club, staker string, amount uint64) (*Withdrawal, []network.Instruction, error) {
	funds, err := e.t.stakingFunds(staker)
	if err != nil {
		return nil, nil, err
	}
	if funds < amount {
		return nil, nil, fmt.Errorf("%w: staking funds %d, requested %d", ErrBalanceUnderflow, funds, amount)
	}
	if err := e.t.putStakingFunds(staker, funds-amount); err != nil {
		return nil, nil, err
	}

	bonds, err := e.t.bonds(club)
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(bonds, func(i, j int) bool {
		return bonds[i].StartTimestamp.After(bonds[j].StartTimestamp)
	})

	remaining := amount
	kept := make([]BondRecord, 0, len(bonds))
	var immature []BondRecord
	var unbonded, bonded uint64

	for _, b := range bonds {
		switch {
		case b.BonderAddress != staker:
			kept = append(kept, b)
		case !b.Matured(e.now):
			immature = append(immature, b)
		default:
			var used uint64
			b, used = consumeBond(b, &remaining)
			unbonded += used
			if b.BondedAmount > 0 {
				kept = append(kept, b)
			}
		}
	}
	for _, b := range immature {
		var used uint64
		b, used = consumeBond(b, &remaining)
		bonded += used
		if b.BondedAmount > 0 {
			kept = append(kept, b)
		}
	}
	if err := e.t.putBonds(club, kept); err != nil {
		return nil, nil, err
	}

	if err := e.decreaseStake(club, staker, amount-unbonded-bonded); err != nil {
		return nil, nil, err
	}

	w := &Withdrawal{Amount: amount, Unbonded: unbonded, Bonded: bonded}
	if amount > unbonded {
		burned, err := revshare.Percent(amount-unbonded, WithdrawBurnPercent)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrArithmetic, err)
		}
		w.Burned = burned
	}
	w.Paid = amount - w.Burned

	var out []network.Instruction
	if w.Burned > 0 {
		out = append(out, network.Instruction{Kind: network.KindBurn, Amount: w.Burned, Memo: "staking_withdraw_burn"})
	}
	if w.Paid > 0 {
		out = append(out, e.transfer(staker, w.Paid, "staking_withdraw"))
	}
	return w, out, nil
}

// consumeBond draws up to *remaining from b and returns the reduced bond and
// the amount drawn.
func consumeBond(b BondRecord, remaining *uint64) (BondRecord, uint64) {
	if *remaining == 0 {
		return b, 0
	}
	if b.BondedAmount > *remaining {
		used := *remaining
		b.BondedAmount -= used
		*remaining = 0
		return b, used
	}
	used := b.BondedAmount
	*remaining -= used
	b.BondedAmount = 0
	return b, used
}
