package clubstaking

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/furysport/furycontracts-sub000/storage"
)

var (
	bucketOwnership     = []byte("club_ownership")
	bucketStaking       = []byte("club_staking")
	bucketBonding       = []byte("club_bonding")
	bucketPreviousOwner = []byte("club_previous_owner")
	bucketStakingFunds  = []byte("staking_funds")
	bucketReward        = []byte("reward")

	keyAccumulator = []byte("accumulator")
)

// Buckets lists every bucket the ledger uses. Pass them to
// storage.OpenBoltStore or storage.NewMemStore.
func Buckets() [][]byte {
	return [][]byte{
		bucketOwnership,
		bucketStaking,
		bucketBonding,
		bucketPreviousOwner,
		bucketStakingFunds,
		bucketReward,
	}
}

// tables is the typed view of one storage transaction.
type tables struct {
	tx storage.Tx
}

func (t *tables) load(bucket, key []byte, v interface{}) (bool, error) {
	data, err := t.tx.Get(bucket, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("clubstaking: get %s/%s: %w", bucket, key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("clubstaking: decode %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

func (t *tables) save(bucket, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("clubstaking: encode %s/%s: %w", bucket, key, err)
	}
	if err := t.tx.Put(bucket, key, data); err != nil {
		return fmt.Errorf("clubstaking: put %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (t *tables) remove(bucket, key []byte) error {
	if err := t.tx.Delete(bucket, key); err != nil {
		return fmt.Errorf("clubstaking: delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// scan decodes every value in bucket, in ascending key order, into a fresh T.
func scan[T any](t *tables, bucket []byte, fn func(key string, v T) error) error {
	return t.tx.Scan(bucket, nil, func(k, data []byte) error {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("clubstaking: decode %s/%s: %w", bucket, k, err)
		}
		return fn(string(k), v)
	})
}

// --- Ownership ---

func (t *tables) ownership(club string) (*ClubOwnership, error) {
	var o ClubOwnership
	ok, err := t.load(bucketOwnership, []byte(club), &o)
	if err != nil || !ok {
		return nil, err
	}
	return &o, nil
}

func (t *tables) putOwnership(o *ClubOwnership) error {
	return t.save(bucketOwnership, []byte(o.ClubName), o)
}

func (t *tables) allOwnerships() ([]ClubOwnership, error) {
	var out []ClubOwnership
	err := scan(t, bucketOwnership, func(_ string, o ClubOwnership) error {
		out = append(out, o)
		return nil
	})
	return out, err
}

// --- Staking ---

func (t *tables) stakes(club string) ([]StakeRecord, error) {
	var list []StakeRecord
	if _, err := t.load(bucketStaking, []byte(club), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// putStakes stores a club's stake list; an empty list removes the key.
func (t *tables) putStakes(club string, list []StakeRecord) error {
	if len(list) == 0 {
		return t.remove(bucketStaking, []byte(club))
	}
	return t.save(bucketStaking, []byte(club), list)
}

// scanStakes visits every club's stake list in ascending club order.
func (t *tables) scanStakes(fn func(club string, list []StakeRecord) error) error {
	return scan(t, bucketStaking, fn)
}

// --- Bonding ---

func (t *tables) bonds(club string) ([]BondRecord, error) {
	var list []BondRecord
	if _, err := t.load(bucketBonding, []byte(club), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (t *tables) putBonds(club string, list []BondRecord) error {
	if len(list) == 0 {
		return t.remove(bucketBonding, []byte(club))
	}
	return t.save(bucketBonding, []byte(club), list)
}

func (t *tables) scanBonds(fn func(club string, list []BondRecord) error) error {
	return scan(t, bucketBonding, fn)
}

// --- Previous owners ---

func (t *tables) previousOwner(addr string) (*PreviousOwnerReward, error) {
	var p PreviousOwnerReward
	ok, err := t.load(bucketPreviousOwner, []byte(addr), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (t *tables) putPreviousOwner(p *PreviousOwnerReward) error {
	return t.save(bucketPreviousOwner, []byte(p.PreviousOwnerAddress), p)
}

func (t *tables) deletePreviousOwner(addr string) error {
	return t.remove(bucketPreviousOwner, []byte(addr))
}

func (t *tables) allPreviousOwners() ([]PreviousOwnerReward, error) {
	var out []PreviousOwnerReward
	err := scan(t, bucketPreviousOwner, func(_ string, p PreviousOwnerReward) error {
		out = append(out, p)
		return nil
	})
	return out, err
}

// --- Staking funds ---

func (t *tables) stakingFunds(addr string) (uint64, error) {
	var amount uint64
	if _, err := t.load(bucketStakingFunds, []byte(addr), &amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func (t *tables) putStakingFunds(addr string, amount uint64) error {
	if amount == 0 {
		return t.remove(bucketStakingFunds, []byte(addr))
	}
	return t.save(bucketStakingFunds, []byte(addr), amount)
}

// --- Reward accumulator ---

// accumulator returns the stored accumulator; absent means a zero pool
// with distribution allowed immediately.
func (t *tables) accumulator() (*RewardAccumulator, bool, error) {
	var acc RewardAccumulator
	ok, err := t.load(bucketReward, keyAccumulator, &acc)
	if err != nil {
		return nil, false, err
	}
	return &acc, ok, nil
}

func (t *tables) putAccumulator(acc *RewardAccumulator) error {
	return t.save(bucketReward, keyAccumulator, acc)
}
