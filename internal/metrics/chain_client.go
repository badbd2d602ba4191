package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of settlement-chain RPC operations.",
	}, []string{"operation", "status"})
	chainRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of settlement-chain RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ChainClient tracks metrics for calls against the settlement contracts.
type ChainClient struct{}

// NewChainClient constructs a metrics collector for the chain client.
func NewChainClient() *ChainClient {
	return &ChainClient{}
}

// Observe records a single contract call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	chainRequestsTotal.WithLabelValues(operation, status).Inc()
	chainRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
