package clubstaking

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/revshare"
)

func fixedOracle(quote, token uint64) *network.MockPriceOracle {
	return &network.MockPriceOracle{
		PoolReservesFn: func(context.Context) (*network.Reserves, error) {
			return &network.Reserves{Quote: quote, Token: token}, nil
		},
	}
}

func TestFeeQuoter_Quote(t *testing.T) {
	// 1 token = 0.25 quote units; platform 100 + transaction 30 + control 50 bps.
	q := NewFeeQuoter(fixedOracle(500, 2000), testParams())
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  Command
		want uint64
	}{
		{"stake", StakeCmd{Amount: 10000}, 45},
		{"withdraw", WithdrawCmd{Amount: 10000, Immediate: true}, 32},
		{"buy uses club price", BuyClubCmd{Price: 1}, 325},
		{"release", ReleaseClubCmd{}, 0},
		{"claim", ClaimStakerRewardCmd{}, 0},
		{"claim owner", ClaimOwnerRewardCmd{}, 0},
		{"claim previous", ClaimPreviousOwnerRewardCmd{}, 0},
		{"fund", FundRewardPoolCmd{Amount: 10000}, 0},
		{"distribute", DistributeRewardsCmd{}, 0},
		{"sweep", SweepMaturedBondsCmd{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.Quote(ctx, tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeeQuoter_NoOracle(t *testing.T) {
	q := NewFeeQuoter(nil, testParams())
	got, err := q.Quote(context.Background(), StakeCmd{Amount: 1_000_000})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestFeeQuoter_Errors(t *testing.T) {
	_, err := NewFeeQuoter(fixedOracle(1, 0), testParams()).Quote(context.Background(), StakeCmd{Amount: 1})
	assert.ErrorIs(t, err, ErrFeeQuote)

	_, err = NewFeeQuoter(fixedOracle(math.MaxUint64, 1), testParams()).Quote(context.Background(), StakeCmd{Amount: math.MaxUint64})
	assert.ErrorIs(t, err, ErrFeeQuote)

	down := &network.MockPriceOracle{PoolReservesFn: func(context.Context) (*network.Reserves, error) {
		return nil, network.ErrOracleUnavailable
	}}
	_, err = NewFeeQuoter(down, testParams()).Quote(context.Background(), StakeCmd{Amount: 1})
	assert.ErrorIs(t, err, network.ErrOracleUnavailable)
}

func TestExecute_FeeGating(t *testing.T) {
	f := newFixture(t, WithOracle(fixedOracle(500, 2000)))

	// Purchases must pay the quote exactly.
	err := f.try(BuyClubCmd{Sender: "alice", Club: "club-a", Buyer: "alice", Price: testClubPrice, Fees: 326})
	assert.ErrorIs(t, err, ErrInsufficientFees)
	err = f.try(BuyClubCmd{Sender: "alice", Club: "club-a", Buyer: "alice", Price: testClubPrice, Fees: 324})
	assert.ErrorIs(t, err, ErrInsufficientFees)
	res := f.exec(t, BuyClubCmd{Sender: "alice", Club: "club-a", Buyer: "alice", Price: testClubPrice, Fees: 325})
	assert.Equal(t, uint64(325), res.RequiredFees)
	require.Len(t, res.Instructions, 2)
	assert.Equal(t, network.Instruction{
		Kind: network.KindForwardFees, Recipient: testPlatformFees, Amount: 325, Memo: "buy_club_fees",
	}, res.Instructions[1])

	// Stakes may overpay.
	err = f.try(StakeCmd{Sender: "bob", Club: "club-a", Staker: "bob", Amount: 10000, Fees: 44})
	assert.ErrorIs(t, err, ErrInsufficientFees)
	assert.Empty(t, f.stakesOf(t, "club-a"), "fee failure happens before any ledger write")

	res = f.exec(t, StakeCmd{Sender: "bob", Club: "club-a", Staker: "bob", Amount: 10000, Fees: 50})
	assert.Equal(t, uint64(50), res.Instructions[0].Amount)

	err = f.try(WithdrawCmd{Sender: "bob", Club: "club-a", Staker: "bob", Amount: 10000, Fees: 31})
	assert.ErrorIs(t, err, ErrInsufficientFees)
}

func TestExecute_OracleFailureRejects(t *testing.T) {
	down := &network.MockPriceOracle{PoolReservesFn: func(context.Context) (*network.Reserves, error) {
		return nil, errors.New("pair contract unreachable")
	}}
	f := newFixture(t, WithOracle(down))
	err := f.try(BuyClubCmd{Sender: "alice", Club: "club-a", Buyer: "alice", Price: testClubPrice})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pair contract unreachable")

	all, err := f.svc.AllOwnerships()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestQuoteFee(t *testing.T) {
	tests := []struct {
		name     string
		amount   uint64
		reserves network.Reserves
		bps      uint64
		want     uint64
		wantErr  error
	}{
		{"stake rate", 10000, network.Reserves{Quote: 500, Token: 2000}, 180, 45, nil},
		{"conversion floors first", 3, network.Reserves{Quote: 1, Token: 2}, 10000, 1, nil},
		{"wide conversion", math.MaxUint64, network.Reserves{Quote: 3, Token: 4}, 10000, 13835058055282163711, nil},
		{"converted value overflows", math.MaxUint64, network.Reserves{Quote: 2, Token: 1}, 100, 0, revshare.ErrOverflow},
		{"zero token reserve", 1, network.Reserves{Quote: 1}, 100, 0, ErrFeeQuote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quoteFee(tt.amount, &tt.reserves, tt.bps)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, ErrFeeQuote)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
