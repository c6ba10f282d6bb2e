package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainGatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "h2ledger",
		Subsystem: "chain_gateway",
		Name:      "operations_total",
		Help:      "Count of credit contract operations.",
	}, []string{"operation", "network", "status"})
	chainGatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "h2ledger",
		Subsystem: "chain_gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of credit contract operations, including confirmation wait.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60, 90, 120},
	}, []string{"operation", "network", "status"})
)

// ChainGateway tracks metrics for calls to the credit contract.
type ChainGateway struct {
	network string
}

// NewChainGateway constructs a metrics collector for chain calls.
func NewChainGateway(network string) *ChainGateway {
	if network == "" {
		network = "unknown"
	}
	return &ChainGateway{network: network}
}

// Observe records a single chain call outcome and duration.
func (m ChainGateway) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	chainGatewayRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	chainGatewayRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
