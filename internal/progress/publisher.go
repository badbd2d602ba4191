// Package progress publishes per-job progress events for UI consumption.
// The stream is advisory; pipeline correctness never depends on it.
package progress

import (
	"time"

	"github.com/filecoin-project/pubsub"
)

const subscriberBuffer = 32

// Event is one progress update for a job.
type Event struct {
	JobID   string
	Step    string
	Percent int
	Message string
	At      time.Time
}

type Publisher struct {
	ps *pubsub.PubSub
}

// NewPublisher builds a Publisher.
func NewPublisher() *Publisher {
	return &Publisher{ps: pubsub.New(subscriberBuffer)}
}

// Publish emits a progress event on the job's channel. Non-blocking for the
// pipeline: slow subscribers only delay their own channel.
func (p *Publisher) Publish(jobID, step string, percent int, message string) {
	p.ps.Pub(Event{
		JobID:   jobID,
		Step:    step,
		Percent: percent,
		Message: message,
		At:      time.Now(),
	}, jobID)
}

// Subscribe returns a channel of progress events for one job. Call
// Unsubscribe with the same channel when done.
func (p *Publisher) Subscribe(jobID string) chan interface{} {
	return p.ps.Sub(jobID)
}

// Unsubscribe releases a subscription.
func (p *Publisher) Unsubscribe(jobID string, ch chan interface{}) {
	p.ps.Unsub(ch, jobID)
}

// Shutdown closes all subscriber channels.
func (p *Publisher) Shutdown() {
	p.ps.Shutdown()
}
