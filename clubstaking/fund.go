package clubstaking

import "time"

// fundRewardPool adds amount to the reward accumulator.
func (e *engine) fundRewardPool(amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, ErrZeroAmount
	}
	acc, _, err := e.t.accumulator()
	if err != nil {
		return 0, err
	}
	if acc.Pool, err = checkedAdd(acc.Pool, amount); err != nil {
		return 0, err
	}
	return acc.Pool, e.t.putAccumulator(acc)
}

// initAccumulator writes an empty accumulator unless one exists. A zero
// first allows distribution immediately.
func (e *engine) initAccumulator(first time.Time) (*RewardAccumulator, error) {
	acc, ok, err := e.t.accumulator()
	if err != nil {
		return nil, err
	}
	if ok {
		return acc, nil
	}
	if first.IsZero() {
		first = e.now.Add(-time.Second)
	}
	acc = &RewardAccumulator{NextDistribution: first}
	return acc, e.t.putAccumulator(acc)
}
