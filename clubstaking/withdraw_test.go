package clubstaking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furysport/furycontracts-sub000/network"
)

func withdraw(staker, club string, amount uint64, immediate bool) WithdrawCmd {
	return WithdrawCmd{Sender: staker, Club: club, Staker: staker, Amount: amount, Immediate: immediate}
}

func TestWithdraw_FullWithdrawalRemovesEntry(t *testing.T) {
	tests := []struct {
		name  string
		steps []WithdrawCmd
	}{
		{"single deferred", []WithdrawCmd{withdraw("alice", "club-a", 100, false)}},
		{"two deferred", []WithdrawCmd{withdraw("alice", "club-a", 30, false), withdraw("alice", "club-a", 70, false)}},
		{"single immediate", []WithdrawCmd{withdraw("alice", "club-a", 100, true)}},
		{"mixed", []WithdrawCmd{withdraw("alice", "club-a", 60, true), withdraw("alice", "club-a", 40, false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.buy(t, "club-a", "owner-a")
			f.stake(t, "club-a", "alice", 100)
			f.stake(t, "club-a", "bob", 5)

			for _, cmd := range tt.steps {
				f.exec(t, cmd)
			}

			stakes := f.stakesOf(t, "club-a")
			assert.NotContains(t, stakes, "alice")
			assert.Contains(t, stakes, "bob")
		})
	}
}

func TestWithdraw_DeferredCreatesBond(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)

	res := f.exec(t, withdraw("alice", "club-a", 30, false))
	assert.Empty(t, res.Instructions, "deferred withdrawal moves no tokens")
	assert.Nil(t, res.Withdrawal)

	bonds, err := f.svc.Bonds("club-a")
	require.NoError(t, err)
	require.Len(t, bonds, 1)
	assert.Equal(t, "alice", bonds[0].BonderAddress)
	assert.Equal(t, uint64(30), bonds[0].BondedAmount)
	assert.Equal(t, 5*time.Hour, bonds[0].Duration)
	assert.True(t, bonds[0].StartTimestamp.Equal(t0))

	assert.Equal(t, uint64(70), f.stakesOf(t, "club-a")["alice"].StakedAmount)
	assert.Equal(t, uint64(100), f.funds(t, "alice"), "funds move only on immediate withdrawal")
}

func TestWithdraw_ElevenTwelveThirteenThenImmediate(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 99)

	for _, amount := range []uint64{11, 12, 13} {
		f.exec(t, withdraw("alice", "club-a", amount, false))
		f.clock.Advance(time.Second)
	}
	assert.Equal(t, uint64(63), f.stakesOf(t, "club-a")["alice"].StakedAmount)
	assert.Equal(t, []uint64{11, 12, 13}, f.bondAmounts(t, "club-a", "alice"))

	f.clock.Advance(5 * time.Hour)
	res := f.exec(t, withdraw("alice", "club-a", 36, true))

	require.NotNil(t, res.Withdrawal)
	assert.Equal(t, uint64(36), res.Withdrawal.Unbonded)
	assert.Equal(t, uint64(0), res.Withdrawal.Bonded)
	assert.Equal(t, uint64(0), res.Withdrawal.Burned)
	assert.Equal(t, []network.Instruction{
		{Kind: network.KindTransfer, Recipient: "alice", Amount: 36, Memo: "staking_withdraw"},
	}, res.Instructions)

	assert.Empty(t, f.bondAmounts(t, "club-a", "alice"))
	assert.Equal(t, uint64(63), f.stakesOf(t, "club-a")["alice"].StakedAmount)
	assert.Equal(t, uint64(63), f.funds(t, "alice"))
}

func TestWithdraw_ImmediateWithoutBondsBurnsTenPercent(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)

	res := f.exec(t, withdraw("alice", "club-a", 55, true))
	assert.Equal(t, []network.Instruction{
		{Kind: network.KindBurn, Amount: 5, Memo: "staking_withdraw_burn"},
		{Kind: network.KindTransfer, Recipient: "alice", Amount: 50, Memo: "staking_withdraw"},
	}, res.Instructions)
	assert.Equal(t, uint64(45), f.stakesOf(t, "club-a")["alice"].StakedAmount)
}

func TestWithdraw_PartialMaturedBondIsReduced(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)
	f.exec(t, withdraw("alice", "club-a", 40, false))
	f.clock.Advance(5 * time.Hour)

	res := f.exec(t, withdraw("alice", "club-a", 25, true))
	assert.Equal(t, uint64(25), res.Withdrawal.Unbonded)
	assert.Equal(t, uint64(0), res.Withdrawal.Burned)
	assert.Equal(t, []uint64{15}, f.bondAmounts(t, "club-a", "alice"))
	assert.Equal(t, uint64(60), f.stakesOf(t, "club-a")["alice"].StakedAmount, "bonded principal is not deducted twice")
}

func TestWithdraw_ImmediateDrawsImmatureBondsAfterMatured(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)

	f.exec(t, withdraw("alice", "club-a", 10, false)) // matures
	f.clock.Advance(5 * time.Hour)
	f.exec(t, withdraw("alice", "club-a", 20, false)) // still cooling down

	res := f.exec(t, withdraw("alice", "club-a", 25, true))
	w := res.Withdrawal
	assert.Equal(t, uint64(10), w.Unbonded)
	assert.Equal(t, uint64(15), w.Bonded)
	assert.Equal(t, uint64(1), w.Burned, "floor(10% of 15)")
	assert.Equal(t, uint64(24), w.Paid)

	assert.Equal(t, []uint64{5}, f.bondAmounts(t, "club-a", "alice"))
	assert.Equal(t, uint64(70), f.stakesOf(t, "club-a")["alice"].StakedAmount)
}

func TestWithdraw_ImmediateDrawsImmatureBondThenStake(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)
	f.exec(t, withdraw("alice", "club-a", 30, false))

	res := f.exec(t, withdraw("alice", "club-a", 50, true))
	assert.Equal(t, uint64(0), res.Withdrawal.Unbonded)
	assert.Equal(t, uint64(30), res.Withdrawal.Bonded)
	assert.Equal(t, uint64(5), res.Withdrawal.Burned)
	assert.Empty(t, f.bondAmounts(t, "club-a", "alice"))
	assert.Equal(t, uint64(50), f.stakesOf(t, "club-a")["alice"].StakedAmount)
}

func TestWithdraw_ConsumesMostRecentBondFirst(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)

	f.exec(t, withdraw("alice", "club-a", 10, false))
	f.clock.Advance(time.Minute)
	f.exec(t, withdraw("alice", "club-a", 20, false))
	f.clock.Advance(6 * time.Hour)

	f.exec(t, withdraw("alice", "club-a", 15, true))
	bonds, err := f.svc.BondsForUser("club-a", "alice")
	require.NoError(t, err)
	require.Len(t, bonds, 2)
	byStart := map[time.Time]uint64{}
	for _, b := range bonds {
		byStart[b.StartTimestamp.UTC()] = b.BondedAmount
	}
	assert.Equal(t, uint64(10), byStart[t0], "older bond untouched")
	assert.Equal(t, uint64(5), byStart[t0.Add(time.Minute)], "newer bond drawn first")
}

func TestWithdraw_LeavesOtherStakersBondsAlone(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)
	f.stake(t, "club-a", "bob", 100)
	f.exec(t, withdraw("bob", "club-a", 40, false))
	f.exec(t, withdraw("alice", "club-a", 10, false))
	f.clock.Advance(6 * time.Hour)

	f.exec(t, withdraw("alice", "club-a", 50, true))
	assert.Equal(t, []uint64{40}, f.bondAmounts(t, "club-a", "bob"))
	assert.Empty(t, f.bondAmounts(t, "club-a", "alice"))
}

func TestWithdraw_BurnInvariant(t *testing.T) {
	amounts := []uint64{1, 9, 10, 11, 99, 100, 101, 12345}
	for _, amount := range amounts {
		f := newFixture(t)
		f.buy(t, "club-a", "owner-a")
		f.stake(t, "club-a", "alice", 20000)
		f.exec(t, withdraw("alice", "club-a", 7, false))
		f.clock.Advance(5 * time.Hour)

		res := f.exec(t, withdraw("alice", "club-a", amount, true))
		w := res.Withdrawal
		assert.Equal(t, amount, transfersTo(res.Instructions, "alice")+burned(res.Instructions), "amount %d", amount)
		if amount > w.Unbonded {
			assert.Equal(t, (amount-w.Unbonded)*10/100, w.Burned, "amount %d", amount)
		} else {
			assert.Zero(t, w.Burned)
		}
	}
}

func TestWithdraw_Errors(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 10)

	err := f.try(WithdrawCmd{Sender: "mallory", Club: "club-a", Staker: "alice", Amount: 1})
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = f.try(withdraw("alice", "missing", 1, true))
	assert.ErrorIs(t, err, ErrInvalidClub)

	err = f.try(withdraw("alice", "club-a", 0, false))
	assert.ErrorIs(t, err, ErrZeroAmount)

	err = f.try(withdraw("alice", "club-a", 11, false))
	assert.ErrorIs(t, err, ErrExcessWithdrawal)
	assert.ErrorIs(t, err, ErrArithmetic)

	err = f.try(withdraw("bob", "club-a", 1, false))
	assert.ErrorIs(t, err, ErrArithmetic)

	assert.Empty(t, f.bondAmounts(t, "club-a", "alice"))
	assert.Equal(t, uint64(10), f.stakesOf(t, "club-a")["alice"].StakedAmount)
}

func TestWithdraw_FailedImmediateRollsBack(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.buy(t, "club-b", "owner-b")
	f.stake(t, "club-a", "alice", 10)
	f.stake(t, "club-b", "alice", 10)

	// Funds cover 15 but the club-a stake does not.
	err := f.try(withdraw("alice", "club-a", 15, true))
	assert.ErrorIs(t, err, ErrExcessWithdrawal)
	assert.Equal(t, uint64(20), f.funds(t, "alice"))
	assert.Equal(t, uint64(10), f.stakesOf(t, "club-a")["alice"].StakedAmount)
}

func TestWithdraw_ImmediateBeyondFunds(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 10)

	err := f.try(withdraw("alice", "club-a", 11, true))
	assert.ErrorIs(t, err, ErrBalanceUnderflow)
	assert.ErrorIs(t, err, ErrArithmetic)
}
