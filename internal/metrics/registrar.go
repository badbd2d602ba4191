package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "registrar",
		Name:      "registrations_total",
		Help:      "Count of on-chain protocol registrations.",
	}, []string{"status"})
	registrationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "registrar",
		Name:      "registration_duration_seconds",
		Help:      "Duration of on-chain protocol registrations.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"status"})
)

// Registrar tracks metrics for the protocol registration workflow.
type Registrar struct{}

// NewRegistrar constructs a metrics collector for the registrar.
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// ObserveRegistration records one registration attempt outcome and duration.
func (m Registrar) ObserveRegistration(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	registrationsTotal.WithLabelValues(status).Inc()
	registrationDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
