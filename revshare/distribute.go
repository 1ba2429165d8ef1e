package revshare

import (
	"github.com/holiman/uint256"
)

// Split divides amount between entries in proportion to their shares.
// Every payout is floored; the undistributed remainder is returned so the
// caller can decide where dust goes. The share total is summed in 256 bits,
// so entries whose weights together exceed 64 bits still split correctly.
func Split(amount uint64, entries []Entry) ([]Distribution, uint64, error) {
	if len(entries) == 0 {
		return nil, amount, ErrNoEntries
	}
	total := SumShares(entries)
	if total.IsZero() {
		return nil, amount, ErrZeroTotalShares
	}

	distributions := make([]Distribution, len(entries))
	for i, entry := range entries {
		distributions[i] = Distribution{
			Address: entry.Address,
			Amount:  proRata(amount, entry.Share, total),
		}
	}
	if err := ValidateConservation(amount, distributions); err != nil {
		return nil, amount, err
	}
	distributed, _ := Total(distributions)
	return distributions, amount - distributed, nil
}

// proRata returns floor(amount * share / total). share never exceeds total,
// so the result fits in 64 bits.
func proRata(amount, share uint64, total *uint256.Int) uint64 {
	x := new(uint256.Int).SetUint64(amount)
	x.Mul(x, uint256.NewInt(share))
	x.Div(x, total)
	if !x.IsUint64() {
		return 0
	}
	return x.Uint64()
}
