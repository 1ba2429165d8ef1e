// Package keeper runs the periodic ledger maintenance jobs: reward
// distribution and the matured bond sweep.
package keeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/furysport/furycontracts-sub000/clubstaking"
	"github.com/furysport/furycontracts-sub000/logger"
	"github.com/furysport/furycontracts-sub000/metrics"
)

// Job names, also used as metric labels.
const (
	JobDistribute = "distribute_rewards"
	JobSweep      = "sweep_matured_bonds"
)

// Executor runs ledger commands. *clubstaking.Service satisfies it.
type Executor interface {
	Execute(ctx context.Context, cmd clubstaking.Command) (*clubstaking.Result, error)
}

var _ Executor = (*clubstaking.Service)(nil)

// Config holds the keeper schedules. An empty schedule disables that job.
type Config struct {
	Admin              string
	DistributeSchedule string        // standard cron expression or descriptor such as "@every 1m"
	SweepSchedule      string
	JobTimeout         time.Duration // per-run deadline; zero means one minute
}

// Keeper schedules maintenance commands against the ledger as the admin.
type Keeper struct {
	exec    Executor
	cfg     Config
	log     *zap.Logger
	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// New creates a keeper and registers its jobs; nothing runs until Start.
func New(exec Executor, cfg Config, log *zap.Logger) (*Keeper, error) {
	if cfg.Admin == "" {
		return nil, ErrMissingAdmin
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("keeper")

	k := &Keeper{exec: exec, cfg: cfg, log: log}
	clog := cronLogger{log}
	k.cron = cron.New(
		cron.WithLogger(clog),
		cron.WithChain(cron.Recover(clog), cron.SkipIfStillRunning(clog)),
	)

	jobs := []struct {
		name string
		expr string
		run  func(context.Context) error
	}{
		{JobDistribute, cfg.DistributeSchedule, k.RunDistribute},
		{JobSweep, cfg.SweepSchedule, k.RunSweep},
	}
	for _, j := range jobs {
		if j.expr == "" {
			continue
		}
		sched, err := cron.ParseStandard(j.expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrInvalidSchedule, j.name, j.expr, err)
		}
		run := j.run
		k.cron.Schedule(sched, cron.FuncJob(func() {
			ctx, cancel := context.WithTimeout(context.Background(), k.cfg.JobTimeout)
			defer cancel()
			_ = run(ctx)
		}))
		log.Info("job scheduled", zap.String("job", j.name), zap.String("schedule", j.expr))
	}
	return k, nil
}

// Start begins running scheduled jobs in the background.
func (k *Keeper) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.running {
		return ErrAlreadyRunning
	}
	k.running = true
	k.cron.Start()
	k.log.Info("keeper started")
	return nil
}

// Stop halts scheduling and waits for running jobs until ctx is done.
func (k *Keeper) Stop(ctx context.Context) error {
	k.mu.Lock()
	if !k.running {
		k.mu.Unlock()
		return nil
	}
	k.running = false
	k.mu.Unlock()

	done := k.cron.Stop()
	select {
	case <-done.Done():
		k.log.Info("keeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunDistribute runs one distribution. A distribution that is not yet due is
// not an error.
func (k *Keeper) RunDistribute(ctx context.Context) error {
	return k.run(ctx, JobDistribute, clubstaking.DistributeRewardsCmd{Sender: k.cfg.Admin})
}

// RunSweep removes matured bonds.
func (k *Keeper) RunSweep(ctx context.Context) error {
	return k.run(ctx, JobSweep, clubstaking.SweepMaturedBondsCmd{Sender: k.cfg.Admin})
}

func (k *Keeper) run(ctx context.Context, job string, cmd clubstaking.Command) error {
	log := logger.WithContext(k.log, ctx).With(zap.String("job", job))
	start := time.Now()
	res, err := k.exec.Execute(ctx, cmd)
	metrics.RecordKeeperRun(job, time.Since(start), err == nil || errors.Is(err, clubstaking.ErrDistributionTooEarly))

	switch {
	case errors.Is(err, clubstaking.ErrDistributionTooEarly):
		log.Debug("distribution not due", zap.Error(err))
		return nil
	case err != nil:
		log.Error("job failed", zap.Error(err))
		return err
	}

	fields := []zap.Field{zap.Duration("took", time.Since(start))}
	if d := res.Distribution; d != nil {
		fields = append(fields, zap.Bool("distributed", d.Distributed), zap.String("club", d.WinnerClub),
			zap.Uint64("pool", d.Pool), zap.Time("next_distribution", d.NextDistribution))
	}
	if job == JobSweep {
		fields = append(fields, zap.Int("swept", res.Swept))
	}
	log.Info("job completed", fields...)
	return nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ log *zap.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
