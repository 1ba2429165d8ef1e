package revshare

import "errors"

var (
	// ErrZeroTotalShares indicates total shares is zero.
	ErrZeroTotalShares = errors.New("revshare: zero total shares")

	// ErrOverflow indicates an intermediate or final amount does not fit in 64 bits.
	ErrOverflow = errors.New("revshare: arithmetic overflow")

	// ErrInvalidPercent indicates a percentage outside [0, 100].
	ErrInvalidPercent = errors.New("revshare: invalid percentage")

	// ErrConservationViolation indicates a split paid out more than it was given.
	ErrConservationViolation = errors.New("revshare: conservation violated")

	// ErrNoEntries indicates there are no participants to split between.
	ErrNoEntries = errors.New("revshare: no entries")
)
