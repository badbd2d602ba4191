package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listenerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "listener",
		Name:      "polls_total",
		Help:      "Count of event poll cycles per event name.",
	}, []string{"event", "status"})
	listenerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bugbounty",
		Subsystem: "listener",
		Name:      "poll_duration_seconds",
		Help:      "Duration of event poll cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"event", "status"})
	listenerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bugbounty",
		Subsystem: "listener",
		Name:      "events_total",
		Help:      "Count of chain events persisted.",
	}, []string{"event"})
)

// Listener tracks metrics for the chain event listener.
type Listener struct{}

// NewListener constructs a metrics collector for the listener.
func NewListener() *Listener {
	return &Listener{}
}

// ObservePoll records one poll cycle outcome and duration.
func (m Listener) ObservePoll(eventName string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	listenerPollsTotal.WithLabelValues(eventName, status).Inc()
	listenerPollDuration.WithLabelValues(eventName, status).Observe(time.Since(started).Seconds())
}

// AddEvents counts persisted chain events.
func (m Listener) AddEvents(eventName string, count int) {
	listenerEventsTotal.WithLabelValues(eventName).Add(float64(count))
}
