package clubstaking

import (
	"context"
	"fmt"

	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/revshare"
)

// FeeQuoter prices the fee-denomination fee that must accompany a command.
// Without an oracle every quote is zero.
type FeeQuoter struct {
	oracle network.PriceOracle
	params Params
}

// NewFeeQuoter creates a quoter. oracle may be nil.
func NewFeeQuoter(oracle network.PriceOracle, params Params) *FeeQuoter {
	return &FeeQuoter{oracle: oracle, params: params}
}

// feeBasis returns the token amount a command is charged on and the fee rate.
func (q *FeeQuoter) feeBasis(cmd Command) (amount, bps uint64) {
	p := q.params
	switch c := cmd.(type) {
	case BuyClubCmd:
		return p.ClubPrice, p.PlatformFeeBps + p.TransactionFeeBps
	case StakeCmd:
		return c.Amount, p.PlatformFeeBps + p.TransactionFeeBps + p.ControlFeeBps
	case WithdrawCmd:
		return c.Amount, p.PlatformFeeBps + p.TransactionFeeBps
	case ReleaseClubCmd, ClaimStakerRewardCmd, ClaimOwnerRewardCmd, ClaimPreviousOwnerRewardCmd,
		FundRewardPoolCmd, DistributeRewardsCmd, SweepMaturedBondsCmd:
		return 0, 0
	default:
		panic(fmt.Sprintf("clubstaking: unhandled command %T", cmd))
	}
}

// Quote returns the fee required for cmd:
// amount * quote_reserve / token_reserve * bps / 10000, floored.
func (q *FeeQuoter) Quote(ctx context.Context, cmd Command) (uint64, error) {
	amount, bps := q.feeBasis(cmd)
	if amount == 0 || bps == 0 || q.oracle == nil {
		return 0, nil
	}
	reserves, err := q.oracle.PoolReserves(ctx)
	if err != nil {
		return 0, err
	}
	return quoteFee(amount, reserves, bps)
}

func quoteFee(amount uint64, reserves *network.Reserves, bps uint64) (uint64, error) {
	if reserves.Token == 0 {
		return 0, fmt.Errorf("%w: token reserve is zero", ErrFeeQuote)
	}
	value, err := revshare.MulDiv(amount, reserves.Quote, reserves.Token)
	if err != nil {
		return 0, fmt.Errorf("%w: convert %d at %d/%d: %w", ErrFeeQuote, amount, reserves.Quote, reserves.Token, err)
	}
	fee, err := revshare.BasisPoints(value, bps)
	if err != nil {
		return 0, fmt.Errorf("%w: %d bps of %d: %w", ErrFeeQuote, bps, value, err)
	}
	return fee, nil
}

// checkFees compares supplied fees against the quote. A purchase must pay the
// quote exactly; stake and withdraw may overpay.
func checkFees(cmd Command, required, supplied uint64) error {
	switch cmd.(type) {
	case BuyClubCmd:
		if supplied != required {
			return fmt.Errorf("%w: required %d, received %d", ErrInsufficientFees, required, supplied)
		}
	default:
		if supplied < required {
			return fmt.Errorf("%w: required %d, received %d", ErrInsufficientFees, required, supplied)
		}
	}
	return nil
}
