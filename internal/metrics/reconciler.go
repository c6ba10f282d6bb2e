package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "h2ledger",
		Subsystem: "reconciler",
		Name:      "scan_total",
		Help:      "Count of outbox scans.",
	}, []string{"status"})

	reconcilerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "h2ledger",
		Subsystem: "reconciler",
		Name:      "scan_duration_seconds",
		Help:      "Duration of an outbox scan including resolution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	reconcilerScanSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "h2ledger",
		Subsystem: "reconciler",
		Name:      "scan_size",
		Help:      "Number of stale chain operations found per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	reconcilerOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "h2ledger",
		Subsystem: "reconciler",
		Name:      "outcomes_total",
		Help:      "Count of resolved chain operations by outcome.",
	}, []string{"kind", "outcome"})
)

// Reconciler tracks metrics for the outbox reconciler.
type Reconciler struct{}

// NewReconciler constructs a Reconciler metrics collector.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// ObserveScan records a scan outcome, its duration and the number of operations found.
func (m Reconciler) ObserveScan(err error, operations int, started time.Time) {
	status := statusOf(err)
	reconcilerScanTotal.WithLabelValues(status).Inc()
	reconcilerScanDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		reconcilerScanSize.Observe(float64(operations))
	}
}

// ObserveOutcome counts how a single chain operation was resolved.
func (m Reconciler) ObserveOutcome(kind, outcome string) {
	reconcilerOutcomesTotal.WithLabelValues(kind, outcome).Inc()
}
