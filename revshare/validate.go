package revshare

import (
	"fmt"

	"github.com/holiman/uint256"
)

// ValidateConservation checks that a set of payouts never exceeds the amount
// that was available to pay out.
func ValidateConservation(available uint64, distributions []Distribution) error {
	total, ok := Total(distributions)
	if !ok {
		return fmt.Errorf("%w: payout sum overflows", ErrConservationViolation)
	}
	if total > available {
		return fmt.Errorf("%w: available=%d paid=%d", ErrConservationViolation, available, total)
	}
	return nil
}

// SumShares totals entry weights exactly. The sum may exceed 64 bits.
func SumShares(entries []Entry) *uint256.Int {
	sum := new(uint256.Int)
	for _, e := range entries {
		sum.Add(sum, uint256.NewInt(e.Share))
	}
	return sum
}

// Saturate narrows x to 64 bits, clamping at math.MaxUint64.
func Saturate(x *uint256.Int) uint64 {
	if !x.IsUint64() {
		return ^uint64(0)
	}
	return x.Uint64()
}
