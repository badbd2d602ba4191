package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "validation_pipeline",
		Name:      "steps_total",
		Help:      "Count of executed validation pipeline steps.",
	}, []string{"step", "status"})
	validationStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "validation_pipeline",
		Name:      "step_duration_seconds",
		Help:      "Duration of validation pipeline steps.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"step", "status"})
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "validation_pipeline",
		Name:      "validations_total",
		Help:      "Count of finished validations by verdict.",
	}, []string{"outcome", "status"})
	validationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "validation_pipeline",
		Name:      "validation_duration_seconds",
		Help:      "End-to-end duration of a proof validation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"outcome", "status"})
)

// ValidationPipeline tracks metrics for the validator pipeline.
type ValidationPipeline struct{}

// NewValidationPipeline constructs a metrics collector for the validator.
func NewValidationPipeline() *ValidationPipeline {
	return &ValidationPipeline{}
}

// ObserveStep records one pipeline step outcome and duration.
func (m ValidationPipeline) ObserveStep(step string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	validationStepsTotal.WithLabelValues(step, status).Inc()
	validationStepDuration.WithLabelValues(step, status).Observe(time.Since(started).Seconds())
}

// ObserveValidation records a finished validation with its verdict. The
// outcome is empty when the replay failed before a verdict was reached.
func (m ValidationPipeline) ObserveValidation(outcome string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if outcome == "" {
		outcome = "none"
	}

	validationsTotal.WithLabelValues(outcome, status).Inc()
	validationDuration.WithLabelValues(outcome, status).Observe(time.Since(started).Seconds())
}
