package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "scan_pipeline",
		Name:      "steps_total",
		Help:      "Count of executed scan pipeline steps.",
	}, []string{"step", "agent", "status"})
	scanStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "scan_pipeline",
		Name:      "step_duration_seconds",
		Help:      "Duration of scan pipeline steps.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 0.1s..~3.4m
	}, []string{"step", "agent", "status"})
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "scan_pipeline",
		Name:      "scans_total",
		Help:      "Count of finished scans.",
	}, []string{"agent", "status"})
	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "scan_pipeline",
		Name:      "scan_duration_seconds",
		Help:      "End-to-end duration of a scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s..~68m
	}, []string{"agent", "status"})
)

// ScanPipeline tracks metrics for the researcher scan pipeline.
type ScanPipeline struct {
	agent string
}

// NewScanPipeline constructs a metrics collector for one researcher agent.
func NewScanPipeline(agent string) *ScanPipeline {
	if agent == "" {
		agent = "unknown"
	}
	return &ScanPipeline{agent: agent}
}

// ObserveStep records one pipeline step outcome and duration.
func (m ScanPipeline) ObserveStep(step string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scanStepsTotal.WithLabelValues(step, m.agent, status).Inc()
	scanStepDuration.WithLabelValues(step, m.agent, status).Observe(time.Since(started).Seconds())
}

// ObserveScan records a whole scan outcome and duration.
func (m ScanPipeline) ObserveScan(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scansTotal.WithLabelValues(m.agent, status).Inc()
	scanDuration.WithLabelValues(m.agent, status).Observe(time.Since(started).Seconds())
}
