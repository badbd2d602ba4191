// Package workerpool runs a fixed set of goroutines over a slice of work
// items and propagates the first failure.
package workerpool

import (
	"context"
	"sync"
)

// Process fans items out to workerCount goroutines, invoking process for
// each. The first process error cancels the pool context, stops feeding
// work, and is returned once all workers have exited. A canceled parent
// context is returned as its ctx.Err().
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	feed := make(chan T, workerCount)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-feed:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						fail(err)
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(feed)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case feed <- item:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
