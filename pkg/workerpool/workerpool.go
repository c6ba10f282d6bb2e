// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Process runs process for every item with at most workerCount calls in flight.
// A failing item does not stop the others; failures are joined in item order.
// Items not yet started when ctx is canceled are skipped and ctx.Err() is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	var (
		mu   sync.Mutex
		errs = make([]error, len(items))
	)

	g := errgroup.Group{}
	g.SetLimit(workerCount)
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if err := process(ctx, item); err != nil {
				mu.Lock()
				errs[i] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
