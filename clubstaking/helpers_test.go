package clubstaking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/storage"
)

const (
	testAdmin        = "admin"
	testToken        = "fury-token"
	testClubFees     = "club-fees"
	testPlatformFees = "platform-fees"
	testClubPrice    = 100000
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testParams() Params {
	p := DefaultParams()
	p.Admin = testAdmin
	p.TokenContract = testToken
	p.ClubFeeCollector = testClubFees
	p.PlatformFeeCollector = testPlatformFees
	p.ClubPrice = testClubPrice
	p.BondingDuration = 5 * time.Hour
	p.RewardPeriodicity = 5 * time.Hour
	return p
}

type fixture struct {
	svc   *Service
	store storage.Store
	clock *ManualClock
}

func newFixtureWith(t *testing.T, store storage.Store, params Params, opts ...Option) *fixture {
	t.Helper()
	clock := NewManualClock(t0)
	opts = append([]Option{WithClock(clock), WithLogger(zap.NewNop())}, opts...)
	svc, err := NewService(store, params, opts...)
	require.NoError(t, err)
	_, err = svc.Init(context.Background(), time.Time{})
	require.NoError(t, err)
	return &fixture{svc: svc, store: store, clock: clock}
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	return newFixtureWith(t, NewMemLedger(), testParams(), opts...)
}

func (f *fixture) exec(t *testing.T, cmd Command) *Result {
	t.Helper()
	res, err := f.svc.Execute(context.Background(), cmd)
	require.NoError(t, err, "%s", cmd.Name())
	require.NotNil(t, res)
	return res
}

func (f *fixture) try(cmd Command) error {
	_, err := f.svc.Execute(context.Background(), cmd)
	return err
}

func (f *fixture) buy(t *testing.T, club, buyer string) {
	t.Helper()
	f.exec(t, BuyClubCmd{Sender: buyer, Club: club, Buyer: buyer, Price: testClubPrice})
}

func (f *fixture) stake(t *testing.T, club, staker string, amount uint64) {
	t.Helper()
	f.exec(t, StakeCmd{Sender: staker, Club: club, Staker: staker, Amount: amount})
}

func (f *fixture) fund(t *testing.T, amount uint64) {
	t.Helper()
	f.exec(t, FundRewardPoolCmd{Sender: testToken, From: testAdmin, Amount: amount})
}

func (f *fixture) stakesOf(t *testing.T, club string) map[string]StakeRecord {
	t.Helper()
	list, err := f.svc.Stakes(club)
	require.NoError(t, err)
	out := make(map[string]StakeRecord, len(list))
	for _, r := range list {
		_, dup := out[r.StakerAddress]
		require.False(t, dup, "duplicate stake entry for %s", r.StakerAddress)
		out[r.StakerAddress] = r
	}
	return out
}

func (f *fixture) bondAmounts(t *testing.T, club, user string) []uint64 {
	t.Helper()
	bonds, err := f.svc.BondsForUser(club, user)
	require.NoError(t, err)
	out := make([]uint64, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, b.BondedAmount)
	}
	return out
}

func (f *fixture) funds(t *testing.T, addr string) uint64 {
	t.Helper()
	sf, err := f.svc.StakingFunds(addr)
	require.NoError(t, err)
	return sf.Amount
}

func transfersTo(ins []network.Instruction, recipient string) uint64 {
	var sum uint64
	for _, i := range ins {
		if i.Kind == network.KindTransfer && i.Recipient == recipient {
			sum += i.Amount
		}
	}
	return sum
}

func burned(ins []network.Instruction) uint64 {
	var sum uint64
	for _, i := range ins {
		if i.Kind == network.KindBurn {
			sum += i.Amount
		}
	}
	return sum
}
