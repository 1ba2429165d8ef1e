package revshare

import (
	"github.com/holiman/uint256"
)

// MulDiv returns floor(a * b / c) computed with a 256-bit intermediate,
// so a*b never wraps. It fails when c is zero or the result exceeds 64 bits.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrZeroTotalShares
	}
	x := new(uint256.Int).SetUint64(a)
	x.Mul(x, uint256.NewInt(b))
	x.Div(x, uint256.NewInt(c))
	if !x.IsUint64() {
		return 0, ErrOverflow
	}
	return x.Uint64(), nil
}

// Percent returns floor(amount * pct / 100).
func Percent(amount, pct uint64) (uint64, error) {
	if pct > 100 {
		return 0, ErrInvalidPercent
	}
	return MulDiv(amount, pct, 100)
}

// BasisPoints returns floor(amount * bps / 10000).
func BasisPoints(amount, bps uint64) (uint64, error) {
	return MulDiv(amount, bps, 10000)
}
