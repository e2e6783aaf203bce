// Package parallel provides bounded parallel-map primitives over slices
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item using up to workers goroutines and returns
// the results in input order. A workers value <= 0 defaults to
// runtime.NumCPU(). Context cancellation stops dispatching new items; the
// partial results computed so far are returned alongside ctx.Err().
func Map[T, R any](ctx context.Context, items []T, workers int, fn func(T) R) ([]R, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(items) {
		workers = len(items)
	}

	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = fn(items[i])
			}
		}()
	}

	var dispatchErr error
dispatch:
	for i := range items {
		select {
		case <-ctx.Done():
			dispatchErr = ctx.Err()
			break dispatch
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	return results, dispatchErr
}

// TryMap applies fn to every item using up to workers goroutines. It
// returns results in input order and the first error encountered; on
// error, in-flight work finishes but no new work starts.
func TryMap[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r, err := fn(gctx, items[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ForEach runs fn over every item with bounded concurrency, collecting
// nothing. It returns the first error encountered.
func ForEach[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T) error) error {
	_, err := TryMap(ctx, items, workers, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, fn(ctx, item)
	})
	return err
}
