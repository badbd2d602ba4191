// Package clock provides cancelable sleeps and retry backoff schedules for
// the polling loops and queue workers.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d, or returns the context error if the context
// ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
