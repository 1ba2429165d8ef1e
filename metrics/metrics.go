package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clubstake"

var (
	// Registry holds the ledger's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Total number of ledger operations by command and outcome.",
		},
		[]string{"command", "status"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operation_duration_seconds",
			Help:      "Duration of ledger operations including the storage commit.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"command"},
	)

	distributed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewards",
			Name:      "distributed_total",
			Help:      "Reward units credited by the distribution engine, by recipient class.",
		},
		[]string{"share"},
	)

	rewardPool = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rewards",
			Name:      "pool",
			Help:      "Undistributed reward currently held in the accumulator.",
		},
	)

	burned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "withdrawals",
			Name:      "burned_total",
			Help:      "Units burned by immediate withdrawals.",
		},
	)

	sweptBonds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bonding",
			Name:      "swept_total",
			Help:      "Matured bond records dropped by the sweeper.",
		},
	)

	keeperRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "keeper",
			Name:      "job_runs_total",
			Help:      "Total number of keeper job runs.",
		},
		[]string{"job", "success"},
	)

	keeperDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "keeper",
			Name:      "job_run_duration_seconds",
			Help:      "Duration of keeper job runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"job"},
	)
)

func init() {
	Registry.MustRegister(
		operations,
		operationDuration,
		distributed,
		rewardPool,
		burned,
		sweptBonds,
		keeperRuns,
		keeperDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordOperation records one ledger operation and how long it took.
func RecordOperation(command string, err error, duration time.Duration) {
	if duration <= 0 {
		duration = time.Microsecond
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	operations.WithLabelValues(command, status).Inc()
	operationDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// AddDistributed adds credited reward for a recipient class
// ("winner_stakers", "all_stakers" or "owner").
func AddDistributed(share string, amount uint64) {
	distributed.WithLabelValues(share).Add(float64(amount))
}

// SetRewardPool publishes the current accumulator balance.
func SetRewardPool(amount uint64) {
	rewardPool.Set(float64(amount))
}

// AddBurned records burned units.
func AddBurned(amount uint64) {
	burned.Add(float64(amount))
}

// AddSweptBonds records bond records dropped by a sweep.
func AddSweptBonds(n int) {
	sweptBonds.Add(float64(n))
}

// RecordKeeperRun records metrics for a scheduled keeper job.
func RecordKeeperRun(job string, duration time.Duration, success bool) {
	if job == "" {
		job = "unknown"
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	keeperRuns.WithLabelValues(job, strconv.FormatBool(success)).Inc()
	keeperDuration.WithLabelValues(job).Observe(duration.Seconds())
}
