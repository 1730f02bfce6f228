// Package metrics defines the Prometheus collectors of the indexer and the search service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "searchindex"

// Index metrics.
var (
	IndexRowsWrittenTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_rows_written_total",
			Help:      "Total number of keyword rows written",
		},
		[]string{"kind"}, // "attribute" / "field"
	)

	IndexRowsCanceledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_rows_canceled_total",
			Help:      "Keyword rows skipped by a before-index observer",
		},
	)

	IndexLockSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_lock_skipped_total",
			Help:      "Indexing passes skipped because another writer held the entity lock",
		},
	)

	IndexTruncatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_truncated_total",
			Help:      "Keyword values truncated to the column limit",
		},
	)
)

// Search metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		},
		[]string{"dialect", "outcome"}, // outcome: "matched" / "no_match" / "error"
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds, parse to scored results",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"dialect"},
	)

	SearchSubqueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_subqueries_total",
			Help:      "Attribute-scoped candidate subqueries executed",
		},
		[]string{"result"}, // "ids" / "empty"
	)
)

// Collectors returns every collector of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		IndexRowsWrittenTotal,
		IndexRowsCanceledTotal,
		IndexLockSkippedTotal,
		IndexTruncatedTotal,
		SearchQueriesTotal,
		SearchDuration,
		SearchSubqueriesTotal,
	}
}

// Register registers every collector with reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
