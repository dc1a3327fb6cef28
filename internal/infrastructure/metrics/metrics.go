package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. Register once per process.
type Metrics struct {
	// Bill metrics
	BillsCreated             prometheus.Counter
	InstallmentSeriesCreated prometheus.Counter
	BillsDeleted             prometheus.Counter
	BillOperations           *prometheus.CounterVec

	// Budget metrics
	BudgetEntriesCreated prometheus.Counter
	BudgetEntriesDeleted prometheus.Counter
	SummaryRequests      prometheus.Counter
	SummaryCacheHits     prometheus.Counter
	SummaryCacheMisses   prometheus.Counter

	// Reminder metrics
	DueBillLookups prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		// Bill metrics
		BillsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_bills_created_total",
			Help: "Total number of bills created, installment positions included",
		}),
		InstallmentSeriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_installment_series_created_total",
			Help: "Total number of installment series expanded",
		}),
		BillsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_bills_deleted_total",
			Help: "Total number of bills deleted, scope expansions included",
		}),
		BillOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billtrack_bill_operations_total",
				Help: "Total bill operations by type",
			},
			[]string{"operation"},
		),

		// Budget metrics
		BudgetEntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_budget_entries_created_total",
			Help: "Total number of budget ledger entries created",
		}),
		BudgetEntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_budget_entries_deleted_total",
			Help: "Total number of budget ledger entries deleted",
		}),
		SummaryRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_summary_requests_total",
			Help: "Total number of monthly summary requests",
		}),
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_summary_cache_hits_total",
			Help: "Monthly summary requests answered from cache",
		}),
		SummaryCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_summary_cache_misses_total",
			Help: "Monthly summary requests recomputed from the stores",
		}),

		// Reminder metrics
		DueBillLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billtrack_due_bill_lookups_total",
			Help: "Total number of due-bill reminder lookups",
		}),
	}
}
