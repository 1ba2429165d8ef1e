package clubstaking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/furysport/furycontracts-sub000/logger"
	"github.com/furysport/furycontracts-sub000/metrics"
	"github.com/furysport/furycontracts-sub000/network"
	"github.com/furysport/furycontracts-sub000/storage"
)

// Service is the club staking ledger. Every command runs in one storage
// transaction; token instructions are dispatched only after it commits.
type Service struct {
	store  storage.Store
	params Params
	clock  Clock
	log    *zap.Logger
	quoter *FeeQuoter
	oracle network.PriceOracle
	ledger network.TokenLedger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default is the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock sets the time source. The default is SystemClock.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithOracle enables fee gating against the given price oracle.
func WithOracle(o network.PriceOracle) Option {
	return func(s *Service) { s.oracle = o }
}

// WithTokenLedger dispatches committed instructions to the given token ledger.
func WithTokenLedger(l network.TokenLedger) Option {
	return func(s *Service) { s.ledger = l }
}

// NewService creates a ledger service over store. The store must contain Buckets().
func NewService(store storage.Store, params Params, opts ...Option) (*Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Service{
		store:  store,
		params: params,
		clock:  SystemClock{},
		log:    logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.quoter = NewFeeQuoter(s.oracle, params)
	s.log = s.log.Named("clubstaking")
	return s, nil
}

// OpenBoltLedger opens a bbolt-backed store with every ledger bucket created.
func OpenBoltLedger(path string) (*storage.BoltStore, error) {
	return storage.OpenBoltStore(path, Buckets()...)
}

// NewMemLedger returns an in-memory store with every ledger bucket created.
func NewMemLedger() *storage.MemStore {
	return storage.NewMemStore(Buckets()...)
}

// Params returns the service parameters.
func (s *Service) Params() Params { return s.params }

// Init writes the reward accumulator if it does not exist yet. A zero
// firstDistribution allows a distribution right away. Calling Init again
// leaves the stored accumulator untouched.
func (s *Service) Init(ctx context.Context, firstDistribution time.Time) (*RewardAccumulator, error) {
	now := s.clock.Now()
	var acc *RewardAccumulator
	err := s.store.Update(func(tx storage.Tx) error {
		var err error
		acc, err = newEngine(s.params, tx, now).initAccumulator(firstDistribution)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger initialized",
		zap.Uint64("pool", acc.Pool),
		zap.Time("next_distribution", acc.NextDistribution))
	return acc, nil
}

// Execute quotes and checks fees, applies cmd atomically, then dispatches the
// resulting instructions. On ErrDispatchFailed the ledger change is already
// committed and the returned Result is non-nil.
func (s *Service) Execute(ctx context.Context, cmd Command) (*Result, error) {
	start := time.Now()
	res, err := s.execute(ctx, cmd)
	metrics.RecordOperation(cmd.Name(), err, time.Since(start))
	return res, err
}

func (s *Service) execute(ctx context.Context, cmd Command) (*Result, error) {
	log := logger.WithContext(s.log, ctx).With(zap.String("command", cmd.Name()), zap.String("sender", cmd.Caller()))

	required, err := s.quoter.Quote(ctx, cmd)
	if err != nil {
		log.Warn("fee quote failed", zap.Error(err))
		return nil, fmt.Errorf("clubstaking: quote fee for %s: %w", cmd.Name(), err)
	}
	supplied := suppliedFees(cmd)
	if err := checkFees(cmd, required, supplied); err != nil {
		log.Debug("command rejected", zap.Error(err))
		return nil, err
	}

	now := s.clock.Now()
	var res *Result
	err = s.store.Update(func(tx storage.Tx) error {
		r, err := newEngine(s.params, tx, now).apply(cmd)
		if err != nil {
			return err
		}
		if supplied > 0 && s.params.PlatformFeeCollector != "" {
			r.Instructions = append(r.Instructions, network.Instruction{
				Kind:      network.KindForwardFees,
				Recipient: s.params.PlatformFeeCollector,
				Amount:    supplied,
				Memo:      cmd.Name() + "_fees",
			})
		}
		res = r
		return nil
	})
	if err != nil {
		log.Debug("command rejected", zap.Error(err))
		return nil, err
	}
	res.RequiredFees = required

	s.observe(res)
	log.Info("command committed", resultFields(cmd, res)...)

	if s.ledger == nil || len(res.Instructions) == 0 {
		return res, nil
	}
	receipts, err := s.ledger.Execute(ctx, s.params.TokenContract, res.Instructions)
	res.Receipts = receipts
	if err != nil {
		log.Error("instruction dispatch failed", zap.Error(err), zap.Int("accepted", len(receipts)))
		return res, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}
	return res, nil
}

func (s *Service) observe(res *Result) {
	if w := res.Withdrawal; w != nil && w.Burned > 0 {
		metrics.AddBurned(w.Burned)
	}
	if d := res.Distribution; d != nil {
		if d.Distributed {
			metrics.AddDistributed("winner_stakers", d.WinnerStakers)
			metrics.AddDistributed("all_stakers", d.AllStakers)
			metrics.AddDistributed("owner", d.OwnerReward)
			metrics.SetRewardPool(0)
		} else {
			metrics.SetRewardPool(d.Pool)
		}
	}
	if res.Swept > 0 {
		metrics.AddSweptBonds(res.Swept)
	}
	if res.Command == (FundRewardPoolCmd{}).Name() {
		metrics.SetRewardPool(res.RewardPool)
	}
}

func resultFields(cmd Command, res *Result) []zap.Field {
	fields := []zap.Field{zap.Int("instructions", len(res.Instructions))}
	switch c := cmd.(type) {
	case StakeCmd:
		fields = append(fields, zap.String("club", c.Club), zap.String("address", c.Staker), zap.Uint64("amount", c.Amount))
	case BuyClubCmd:
		fields = append(fields, zap.String("club", c.Club), zap.String("address", c.Buyer), zap.Uint64("amount", c.Price))
	case ReleaseClubCmd:
		fields = append(fields, zap.String("club", c.Club), zap.String("address", c.Owner))
	case WithdrawCmd:
		fields = append(fields, zap.String("club", c.Club), zap.String("address", c.Staker),
			zap.Uint64("amount", c.Amount), zap.Bool("immediate", c.Immediate))
		if w := res.Withdrawal; w != nil {
			fields = append(fields, zap.Uint64("unbonded", w.Unbonded), zap.Uint64("bonded", w.Bonded), zap.Uint64("burned", w.Burned))
		}
	case ClaimStakerRewardCmd:
		fields = append(fields, zap.String("club", c.Club), zap.String("address", c.Staker), zap.Uint64("amount", res.Claimed))
	case ClaimOwnerRewardCmd:
		fields = append(fields, zap.String("club", c.Club), zap.String("address", c.Owner), zap.Uint64("amount", res.Claimed))
	case ClaimPreviousOwnerRewardCmd:
		fields = append(fields, zap.String("address", c.PreviousOwner), zap.Uint64("amount", res.Claimed))
	case FundRewardPoolCmd:
		fields = append(fields, zap.String("address", c.From), zap.Uint64("amount", c.Amount), zap.Uint64("pool", res.RewardPool))
	case DistributeRewardsCmd:
		if d := res.Distribution; d != nil {
			fields = append(fields, zap.Bool("distributed", d.Distributed), zap.String("club", d.WinnerClub),
				zap.Uint64("amount", d.Pool), zap.Time("next_distribution", d.NextDistribution))
		}
	case SweepMaturedBondsCmd:
		fields = append(fields, zap.Int("swept", res.Swept))
	}
	return fields
}
