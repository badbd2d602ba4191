package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "queue",
		Name:      "operations_total",
		Help:      "Count of durable queue operations.",
	}, []string{"operation", "queue", "status"})
	queueOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "queue",
		Name:      "operation_duration_seconds",
		Help:      "Duration of durable queue operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "queue", "status"})
)

// Queue tracks metrics for the durable job queue.
type Queue struct{}

// NewQueue constructs a metrics collector for the queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Observe records a queue operation outcome and duration.
func (m Queue) Observe(operation string, queue string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	queueOperationsTotal.WithLabelValues(operation, queue, status).Inc()
	queueOperationDuration.WithLabelValues(operation, queue, status).Observe(time.Since(started).Seconds())
}
