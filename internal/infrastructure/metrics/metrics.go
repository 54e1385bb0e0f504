package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Posting metrics
	EntriesPosted   prometheus.Counter
	EntriesRejected *prometheus.CounterVec
	AmountsPosted   prometheus.Counter
	EntryDuration   prometheus.Histogram

	// Chart metrics
	AccountsCreated *prometheus.CounterVec

	// Balance metrics
	BalanceQueries  *prometheus.CounterVec
	BalanceDuration prometheus.Histogram
	TrialBalance    prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chartledger_entries_posted_total",
			Help: "Total number of entries posted",
		}),
		EntriesRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chartledger_entries_rejected_total",
				Help: "Total number of rejected entries by reason",
			},
			[]string{"reason"},
		),
		AmountsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chartledger_amounts_posted_total",
			Help: "Total number of amounts posted",
		}),
		EntryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "chartledger_entry_duration_seconds",
			Help:    "Duration of entry posting",
			Buckets: prometheus.DefBuckets,
		}),
		AccountsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chartledger_accounts_created_total",
				Help: "Total number of accounts created by type",
			},
			[]string{"type"},
		),
		BalanceQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chartledger_balance_queries_total",
				Help: "Total balance queries by kind",
			},
			[]string{"kind"},
		),
		BalanceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "chartledger_balance_duration_seconds",
			Help:    "Duration of balance aggregation queries",
			Buckets: prometheus.DefBuckets,
		}),
		TrialBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "chartledger_trial_balance",
			Help: "Last computed trial balance; non-zero signals unbalanced data",
		}),
	}
}
