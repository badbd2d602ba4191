package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "reconciler",
		Name:      "cycles_total",
		Help:      "Count of reconciliation cycles.",
	}, []string{"status"})
	reconcileCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "reconciler",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of reconciliation cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	reconcileDiscrepanciesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "reconciler",
		Name:      "discrepancies_total",
		Help:      "Count of detected discrepancies by category.",
	}, []string{"category"})
)

// Reconciler tracks metrics for the reconciliation loop.
type Reconciler struct{}

// NewReconciler constructs a metrics collector for the reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// ObserveCycle records one reconciliation cycle outcome and duration.
func (m Reconciler) ObserveCycle(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	reconcileCyclesTotal.WithLabelValues(status).Inc()
	reconcileCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// AddDiscrepancies counts detected discrepancies.
func (m Reconciler) AddDiscrepancies(category string, count int) {
	reconcileDiscrepanciesTotal.WithLabelValues(category).Add(float64(count))
}
