// Package fanout runs one operation across a set of inputs on a bounded
// worker pool. The graph services lean on it wherever a request expands into
// per-label Cypher queries: the overview counts every registered label and
// relationship suggestion collects candidates per label, both through Run.
package fanout

import (
	"context"
	"sync"
)

// Result pairs the output for one input with the error that produced it.
// Exactly one of Value and Err is meaningful.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item using at most maxWorkers goroutines and
// returns the results in input order. It blocks until every started call
// has returned. An empty input yields an empty, non-nil slice.
//
// Cancellation is cooperative: once ctx is done, items not yet picked up by
// a worker are marked with ctx.Err() without calling fn, while calls already
// in flight finish on their own terms (fn decides how fast by honoring ctx).
// A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	results := make([]Result[R], len(items))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range maxWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
