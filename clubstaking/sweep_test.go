package clubstaking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweep() SweepMaturedBondsCmd { return SweepMaturedBondsCmd{Sender: testAdmin} }

func TestSweep_DropsOnlyMaturedBonds(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.buy(t, "club-b", "owner-b")
	f.stake(t, "club-a", "alice", 100)
	f.stake(t, "club-b", "bob", 100)

	f.exec(t, withdraw("alice", "club-a", 10, false))
	f.exec(t, withdraw("bob", "club-b", 20, false))
	f.clock.Advance(2 * time.Hour)
	f.exec(t, withdraw("alice", "club-a", 30, false))
	f.clock.Advance(3 * time.Hour) // first two bonds exactly mature

	res := f.exec(t, sweep())
	assert.Equal(t, 2, res.Swept)

	all, err := f.svc.AllBonds()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, uint64(30), all[0].BondedAmount)

	bonds, err := f.svc.Bonds("club-b")
	require.NoError(t, err)
	assert.Empty(t, bonds)
}

func TestSweep_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.buy(t, "club-a", "owner-a")
	f.stake(t, "club-a", "alice", 100)
	f.exec(t, withdraw("alice", "club-a", 10, false))
	f.clock.Advance(time.Hour)
	f.exec(t, withdraw("alice", "club-a", 20, false))
	f.clock.Advance(4 * time.Hour)

	f.exec(t, sweep())
	first, err := f.svc.AllBonds()
	require.NoError(t, err)

	res := f.exec(t, sweep())
	assert.Zero(t, res.Swept)
	second, err := f.svc.AllBonds()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSweep_EmptyQueue(t *testing.T) {
	f := newFixture(t)
	res := f.exec(t, sweep())
	assert.Zero(t, res.Swept)
}

func TestSweep_OnlyAdmin(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.try(SweepMaturedBondsCmd{Sender: "alice"}), ErrUnauthorized)
}
