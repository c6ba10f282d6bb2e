package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lifecycleTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "h2ledger",
		Subsystem: "lifecycle",
		Name:      "transitions_total",
		Help:      "Count of request lifecycle operations by kind, action and outcome.",
	}, []string{"kind", "action", "status"})
	lifecycleTransitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "h2ledger",
		Subsystem: "lifecycle",
		Name:      "transition_duration_seconds",
		Help:      "Duration of request lifecycle operations.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"kind", "action", "status"})
	lifecycleAnomaliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "h2ledger",
		Subsystem: "lifecycle",
		Name:      "anomalies_total",
		Help:      "Count of requests created with anomalous metadata.",
	}, []string{"kind"})
	// Alerting rules page on any increase of this counter.
	lifecyclePersistenceFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "h2ledger",
		Subsystem: "lifecycle",
		Name:      "persistence_failures_total",
		Help:      "Count of local commits that failed after the chain effect was confirmed.",
	}, []string{"kind"})
)

// Lifecycle tracks metrics for the request lifecycle engine.
type Lifecycle struct{}

// NewLifecycle constructs a Lifecycle metrics collector.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// ObserveTransition records the outcome and duration of a lifecycle operation.
func (m Lifecycle) ObserveTransition(kind, action string, err error, started time.Time) {
	status := statusOf(err)

	lifecycleTransitionsTotal.WithLabelValues(kind, action, status).Inc()
	lifecycleTransitionDuration.WithLabelValues(kind, action, status).Observe(time.Since(started).Seconds())
}

// AnomalyFlagged counts a request created with anomalous metadata.
func (m Lifecycle) AnomalyFlagged(kind string) {
	lifecycleAnomaliesTotal.WithLabelValues(kind).Inc()
}

// PersistenceFailure counts a diverged dual write.
func (m Lifecycle) PersistenceFailure(kind string) {
	lifecyclePersistenceFailuresTotal.WithLabelValues(kind).Inc()
}
