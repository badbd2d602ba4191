package clock

import "time"

// Backoff returns the exponential delay before the given retry attempt,
// doubling from base and capped at max. Attempt counting starts at 1.
func Backoff(base time.Duration, attempt int, max time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}
