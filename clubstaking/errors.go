package clubstaking

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Every error returned by an operation wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrUnauthorized indicates the sender may not act for the address in the request.
	ErrUnauthorized = errors.New("clubstaking: unauthorized")

	// ErrInvalidClub indicates the referenced club has no ownership record.
	ErrInvalidClub = errors.New("clubstaking: invalid club")

	// ErrNotFound indicates a referenced user record is absent.
	ErrNotFound = errors.New("clubstaking: not found")

	// ErrInsufficientFees indicates the supplied fees do not satisfy the quote.
	ErrInsufficientFees = errors.New("clubstaking: insufficient fees")

	// ErrInvalidState indicates the ledger is not in a state that allows the operation.
	ErrInvalidState = errors.New("clubstaking: invalid state")

	// ErrArithmetic indicates an amount would underflow or overflow.
	ErrArithmetic = errors.New("clubstaking: arithmetic error")
)

var (
	ErrClubNotAvailable     = fmt.Errorf("%w: club is not available for staking", ErrInvalidClub)
	ErrEmptyClubName        = fmt.Errorf("%w: empty club name", ErrInvalidClub)
	ErrNotOwner             = fmt.Errorf("%w: sender is not the owner of the club", ErrUnauthorized)
	ErrSellerMismatch       = fmt.Errorf("%w: seller is not the owner of the club", ErrUnauthorized)
	ErrNotStaker            = fmt.Errorf("%w: not a staker of the club", ErrNotFound)
	ErrNotPreviousOwner     = fmt.Errorf("%w: not a previous owner", ErrNotFound)
	ErrPriceMismatch        = fmt.Errorf("%w: club price does not match", ErrInvalidState)
	ErrAlreadyOwner         = fmt.Errorf("%w: buyer already owns a club", ErrInvalidState)
	ErrNotReleased          = fmt.Errorf("%w: owner has not released the club", ErrInvalidState)
	ErrLockingPeriod        = fmt.Errorf("%w: locking period for the club is not over", ErrInvalidState)
	ErrDistributionTooEarly = fmt.Errorf("%w: time for reward not yet arrived", ErrInvalidState)
	ErrNoRewards            = fmt.Errorf("%w: no rewards to claim", ErrInvalidState)
	ErrZeroAmount           = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidState)
	ErrNotInitialized       = fmt.Errorf("%w: ledger is not initialized", ErrInvalidState)
	ErrExcessWithdrawal     = fmt.Errorf("%w: excess amount demanded for withdrawal", ErrArithmetic)
	ErrBalanceUnderflow     = fmt.Errorf("%w: balance underflow", ErrArithmetic)
	ErrAmountOverflow       = fmt.Errorf("%w: amount overflow", ErrArithmetic)
	ErrFeeQuote             = fmt.Errorf("%w: fee quote out of range", ErrArithmetic)
)

// ErrInvalidParams indicates Params failed validation.
var ErrInvalidParams = errors.New("clubstaking: invalid params")

// ErrDispatchFailed indicates the ledger committed but the token ledger did not
// accept every instruction. The returned Result still lists all instructions.
var ErrDispatchFailed = errors.New("clubstaking: instruction dispatch failed")

func checkedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("%w: %d + %d", ErrAmountOverflow, a, b)
	}
	return sum, nil
}
