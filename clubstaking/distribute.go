package clubstaking

import (
	"fmt"
	"sort"
	"time"

	"github.com/holiman/uint256"

	"github.com/furysport/furycontracts-sub000/revshare"
)

// Shares of the reward pool, in percent. The winning club's owner receives
// whatever the two staker pools leave behind.
const (
	WinnerStakersPercent = 19
	AllStakersPercent    = 80
)

// Distribution summarises one run of the distribution engine.
type Distribution struct {
	Distributed      bool      `json:"distributed"`
	Pool             uint64    `json:"pool"`
	WinnerClub       string    `json:"winner_club,omitempty"`
	WinnerOwner      string    `json:"winner_owner,omitempty"`
	WinnerStakers    uint64    `json:"winner_stakers_reward"` // paid from the 19% reserve
	AllStakers       uint64    `json:"all_stakers_reward"`    // paid from the 80% reserve
	OwnerReward      uint64    `json:"owner_reward"`
	NextDistribution time.Time `json:"next_distribution"`
}

// distributeRewards splits the reward pool between the stakers of the winning
// club, every staker, and the winning club's owner.
func (e *engine) distributeRewards() (*Distribution, error) {
	acc, _, err := e.t.accumulator()
	if err != nil {
		return nil, err
	}
	if e.now.Before(acc.NextDistribution) {
		return nil, fmt.Errorf("%w: next distribution at %s", ErrDistributionTooEarly, acc.NextDistribution)
	}
	acc.NextDistribution = advanceSchedule(acc.NextDistribution, e.now, e.params.RewardPeriodicity)

	report := &Distribution{Pool: acc.Pool, NextDistribution: acc.NextDistribution}
	if acc.Pool == 0 {
		return report, e.t.putAccumulator(acc)
	}

	clubs, stakes, err := e.loadAllStakes()
	if err != nil {
		return nil, err
	}
	ranking := rankClubs(clubs, stakes)
	if len(ranking) == 0 {
		// Nobody to pay; the pool carries over to the next period.
		return report, e.t.putAccumulator(acc)
	}

	winner := ranking[0]
	owner, err := e.t.ownership(winner.ClubName)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: winning club %s has no owner", ErrInvalidClub, winner.ClubName)
	}

	pool := acc.Pool
	winnerReserve, err := revshare.Percent(pool, WinnerStakersPercent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArithmetic, err)
	}
	globalReserve, err := revshare.Percent(pool, AllStakersPercent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArithmetic, err)
	}

	winnerPaid := creditShares(winnerReserve, stakes[winner.ClubName])
	all := make([][]StakeRecord, 0, len(clubs))
	for _, club := range clubs {
		all = append(all, stakes[club])
	}
	globalPaid := creditShares(globalReserve, all...)

	payouts := append(append([]revshare.Distribution{}, winnerPaid...), globalPaid...)
	if allocated, ok := revshare.Total(payouts); ok && allocated <= pool {
		report.OwnerReward = pool - allocated
	}
	payouts = append(payouts, revshare.Distribution{Address: owner.OwnerAddress, Amount: report.OwnerReward})
	if err := revshare.ValidateConservation(pool, payouts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArithmetic, err)
	}
	report.WinnerStakers, _ = revshare.Total(winnerPaid)
	report.AllStakers, _ = revshare.Total(globalPaid)

	if owner.RewardAmount, err = checkedAdd(owner.RewardAmount, report.OwnerReward); err != nil {
		return nil, err
	}

	for _, club := range clubs {
		if err := e.t.putStakes(club, stakes[club]); err != nil {
			return nil, err
		}
	}
	if err := e.t.putOwnership(owner); err != nil {
		return nil, err
	}

	acc.Pool = 0
	if err := e.t.putAccumulator(acc); err != nil {
		return nil, err
	}

	report.Distributed = true
	report.WinnerClub = winner.ClubName
	report.WinnerOwner = owner.OwnerAddress
	return report, nil
}

// advanceSchedule moves next forward by whole periods until it is after now.
// An unset schedule starts from now.
func advanceSchedule(next, now time.Time, period time.Duration) time.Time {
	if next.IsZero() {
		next = now
	}
	if period <= 0 || next.After(now) {
		return next
	}
	missed := now.Sub(next)/period + 1
	return next.Add(missed * period)
}

// creditShares splits reserve across every record in lists by staked amount
// and adds each floored share to the record's reward. A share that would
// overflow a record's reward is not credited. It returns what was credited.
func creditShares(reserve uint64, lists ...[]StakeRecord) []revshare.Distribution {
	var entries []revshare.Entry
	for _, list := range lists {
		for _, s := range list {
			entries = append(entries, revshare.Entry{Address: s.StakerAddress, Share: s.StakedAmount})
		}
	}
	dists, _, err := revshare.Split(reserve, entries)
	if err != nil {
		// No stakers or no stake: nothing to credit.
		return nil
	}

	i := 0
	for _, list := range lists {
		for j := range list {
			reward, err := checkedAdd(list[j].RewardAmount, dists[i].Amount)
			if err != nil {
				dists[i].Amount = 0
			} else {
				list[j].RewardAmount = reward
			}
			i++
		}
	}
	return dists
}

func (e *engine) loadAllStakes() ([]string, map[string][]StakeRecord, error) {
	var clubs []string
	stakes := make(map[string][]StakeRecord)
	err := e.t.scanStakes(func(club string, list []StakeRecord) error {
		clubs = append(clubs, club)
		stakes[club] = list
		return nil
	})
	return clubs, stakes, err
}

// rankClubs orders clubs by total stake, highest first. clubs must be in
// ascending name order; ties keep that order. Totals are compared exactly;
// a reported TotalStake beyond 64 bits saturates.
func rankClubs(clubs []string, stakes map[string][]StakeRecord) []ClubRank {
	type ranked struct {
		ClubRank
		exact *uint256.Int
	}
	rows := make([]ranked, 0, len(clubs))
	for _, club := range clubs {
		entries := make([]revshare.Entry, len(stakes[club]))
		for i, s := range stakes[club] {
			entries[i] = revshare.Entry{Address: s.StakerAddress, Share: s.StakedAmount}
		}
		total := revshare.SumShares(entries)
		rows = append(rows, ranked{ClubRank{ClubName: club, TotalStake: revshare.Saturate(total)}, total})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].exact.Gt(rows[j].exact)
	})

	ranking := make([]ClubRank, len(rows))
	for i, r := range rows {
		ranking[i] = r.ClubRank
	}
	return ranking
}
