package clubstaking

import (
	"context"

	"github.com/furysport/furycontracts-sub000/storage"
)

func (s *Service) view(fn func(t *tables) error) error {
	return s.store.View(func(tx storage.Tx) error {
		return fn(&tables{tx: tx})
	})
}

// Ownership returns the ownership record of club, or ErrInvalidClub.
func (s *Service) Ownership(club string) (*ClubOwnership, error) {
	var out *ClubOwnership
	err := s.view(func(t *tables) error {
		o, err := t.ownership(club)
		if err != nil {
			return err
		}
		if o == nil {
			return ErrInvalidClub
		}
		out = o
		return nil
	})
	return out, err
}

// AllOwnerships lists every ownership record in club name order.
func (s *Service) AllOwnerships() ([]ClubOwnership, error) {
	var out []ClubOwnership
	err := s.view(func(t *tables) (err error) {
		out, err = t.allOwnerships()
		return err
	})
	return out, err
}

// OwnershipsForOwner lists the clubs owned by owner, released or not.
func (s *Service) OwnershipsForOwner(owner string) ([]ClubOwnership, error) {
	all, err := s.AllOwnerships()
	if err != nil {
		return nil, err
	}
	var out []ClubOwnership
	for _, o := range all {
		if o.OwnerAddress == owner {
			out = append(out, o)
		}
	}
	return out, nil
}

// PreviousOwner returns the reward owed to a previous owner, or ErrNotPreviousOwner.
func (s *Service) PreviousOwner(addr string) (*PreviousOwnerReward, error) {
	var out *PreviousOwnerReward
	err := s.view(func(t *tables) error {
		p, err := t.previousOwner(addr)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrNotPreviousOwner
		}
		out = p
		return nil
	})
	return out, err
}

// AllPreviousOwners lists every previous-owner record.
func (s *Service) AllPreviousOwners() ([]PreviousOwnerReward, error) {
	var out []PreviousOwnerReward
	err := s.view(func(t *tables) (err error) {
		out, err = t.allPreviousOwners()
		return err
	})
	return out, err
}

// Stakes returns club's stake list; a club without stakes yields an empty list.
func (s *Service) Stakes(club string) ([]StakeRecord, error) {
	var out []StakeRecord
	err := s.view(func(t *tables) (err error) {
		out, err = t.stakes(club)
		return err
	})
	return out, err
}

// AllStakes lists every stake record, grouped by club in name order.
func (s *Service) AllStakes() ([]StakeRecord, error) {
	var out []StakeRecord
	err := s.view(func(t *tables) error {
		return t.scanStakes(func(_ string, list []StakeRecord) error {
			out = append(out, list...)
			return nil
		})
	})
	return out, err
}

// StakesForUser lists user's stake records across every club.
func (s *Service) StakesForUser(user string) ([]StakeRecord, error) {
	all, err := s.AllStakes()
	if err != nil {
		return nil, err
	}
	var out []StakeRecord
	for _, r := range all {
		if r.StakerAddress == user {
			out = append(out, r)
		}
	}
	return out, nil
}

// Bonds returns club's bond list as stored.
func (s *Service) Bonds(club string) ([]BondRecord, error) {
	var out []BondRecord
	err := s.view(func(t *tables) (err error) {
		out, err = t.bonds(club)
		return err
	})
	return out, err
}

// AllBonds lists every bond record, grouped by club in name order.
func (s *Service) AllBonds() ([]BondRecord, error) {
	var out []BondRecord
	err := s.view(func(t *tables) error {
		return t.scanBonds(func(_ string, list []BondRecord) error {
			out = append(out, list...)
			return nil
		})
	})
	return out, err
}

// BondsForUser lists user's bonds in club.
func (s *Service) BondsForUser(club, user string) ([]BondRecord, error) {
	bonds, err := s.Bonds(club)
	if err != nil {
		return nil, err
	}
	var out []BondRecord
	for _, b := range bonds {
		if b.BonderAddress == user {
			out = append(out, b)
		}
	}
	return out, nil
}

// ClubRanking orders clubs by total live stake, highest first. Ties keep
// ascending club name order.
func (s *Service) ClubRanking() ([]ClubRank, error) {
	var out []ClubRank
	err := s.view(func(t *tables) error {
		e := &engine{params: s.params, t: t}
		clubs, stakes, err := e.loadAllStakes()
		if err != nil {
			return err
		}
		out = rankClubs(clubs, stakes)
		return nil
	})
	return out, err
}

// RewardAccumulator returns the pool and the next distribution time.
func (s *Service) RewardAccumulator() (*RewardAccumulator, error) {
	var out *RewardAccumulator
	err := s.view(func(t *tables) error {
		acc, ok, err := t.accumulator()
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotInitialized
		}
		out = acc
		return nil
	})
	return out, err
}

// StakingFunds returns the aggregate staking balance of addr.
func (s *Service) StakingFunds(addr string) (*StakingFunds, error) {
	out := &StakingFunds{Address: addr}
	err := s.view(func(t *tables) (err error) {
		out.Amount, err = t.stakingFunds(addr)
		return err
	})
	return out, err
}

// QuoteFee returns the fee that must accompany cmd.
func (s *Service) QuoteFee(ctx context.Context, cmd Command) (uint64, error) {
	return s.quoter.Quote(ctx, cmd)
}
