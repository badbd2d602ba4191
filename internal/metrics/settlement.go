package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "settlement",
		Name:      "attempts_total",
		Help:      "Count of settlement attempts.",
	}, []string{"status"})
	settlementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "settlement",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of settlement attempts including receipt wait.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 0.5s..~4m
	}, []string{"status"})
)

// Settlement tracks metrics for the payment settlement worker.
type Settlement struct{}

// NewSettlement constructs a metrics collector for the settlement worker.
func NewSettlement() *Settlement {
	return &Settlement{}
}

// ObserveSettlement records one settlement attempt outcome and duration.
func (m Settlement) ObserveSettlement(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	settlementsTotal.WithLabelValues(status).Inc()
	settlementDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
