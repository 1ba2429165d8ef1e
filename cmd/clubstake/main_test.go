package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furysport/furycontracts-sub000/clubstaking"
	"github.com/furysport/furycontracts-sub000/config"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CLUBSTAKE_ADMIN", "admin")
	t.Setenv("CLUBSTAKE_TOKEN_CONTRACT", "fury-token")
	t.Setenv("CLUBSTAKE_CLUB_FEE_COLLECTOR", "club-fees")
	t.Setenv("CLUBSTAKE_CLUB_PRICE", "1000")
	t.Setenv("CLUBSTAKE_LOGLEVEL", "error")
	return dir
}

func run(t *testing.T, dir string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	return out, app.Run(append([]string{"clubstake", "--datadir", dir}, args...))
}

func mustRun(t *testing.T, dir string, args ...string) *bytes.Buffer {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, "%v", args)
	return out
}

func TestInitWritesConfig(t *testing.T) {
	dir := setupEnv(t)

	out := mustRun(t, dir, "init")
	var acc clubstaking.RewardAccumulator
	require.NoError(t, json.Unmarshal(out.Bytes(), &acc))
	assert.Zero(t, acc.Pool)

	cfg, err := config.LoadConfig(config.ConfigPath(dir))
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.Admin)
	assert.Equal(t, uint64(1000), cfg.ClubPrice)
}

func TestCommandsAgainstBoltLedger(t *testing.T) {
	dir := setupEnv(t)
	mustRun(t, dir, "init")

	mustRun(t, dir, "buy", "--sender", "owner", "--club", "club-a", "--price", "1000")
	mustRun(t, dir, "stake", "--sender", "alice", "--club", "club-a", "--amount", "40")
	mustRun(t, dir, "fund", "--sender", "fury-token", "--from", "treasury", "--amount", "100")
	mustRun(t, dir, "distribute", "--sender", "admin")

	var stakes []clubstaking.StakeRecord
	out := mustRun(t, dir, "query", "stakes", "--club", "club-a")
	require.NoError(t, json.Unmarshal(out.Bytes(), &stakes))
	require.Len(t, stakes, 1)
	assert.Equal(t, "alice", stakes[0].StakerAddress)
	assert.Equal(t, uint64(40), stakes[0].StakedAmount)
	assert.Equal(t, uint64(99), stakes[0].RewardAmount)

	out = mustRun(t, dir, "claim", "staker", "--sender", "alice", "--club", "club-a")
	var res clubstaking.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, uint64(99), res.Claimed)

	var ranking []clubstaking.ClubRank
	out = mustRun(t, dir, "query", "ranking")
	require.NoError(t, json.Unmarshal(out.Bytes(), &ranking))
	assert.Equal(t, []clubstaking.ClubRank{{ClubName: "club-a", TotalStake: 40}}, ranking)
}

func TestCommandErrors(t *testing.T) {
	dir := setupEnv(t)
	mustRun(t, dir, "init")

	_, err := run(t, dir, "distribute", "--sender", "mallory")
	assert.ErrorIs(t, err, clubstaking.ErrUnauthorized)

	_, err = run(t, dir, "stake", "--sender", "alice", "--club", "nowhere", "--amount", "5")
	assert.ErrorIs(t, err, clubstaking.ErrInvalidClub)

	_, err = run(t, dir, "query", "bonds", "--user", "alice")
	assert.Error(t, err)
}

func TestInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLUBSTAKE_ADMIN", "")
	_, err := run(t, dir, "init")
	assert.ErrorIs(t, err, config.ErrInvalidLedgerParams)
}
