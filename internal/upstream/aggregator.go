package upstream

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-matcher/internal/types"
)

// Aggregator fans out to all configured fetchers and concatenates their
// results in registration order. A source that fails contributes zero jobs;
// the failure is logged, never propagated. Each source is already capped
// individually, so the combined list may exceed a single source's cap.
type Aggregator struct {
	fetchers []Fetcher
}

// NewAggregator creates an aggregator over the given fetchers. Order matters:
// results are concatenated in the order the fetchers are passed.
func NewAggregator(fetchers ...Fetcher) *Aggregator {
	return &Aggregator{fetchers: fetchers}
}

// FetchAll queries every source concurrently and reassembles the results in
// source order. It never fails; the worst case is an empty list.
func (a *Aggregator) FetchAll(ctx context.Context) []types.Job {
	results := make([][]types.Job, len(a.fetchers))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range a.fetchers {
		g.Go(func() error {
			jobs, err := f.Fetch(ctx)
			if err != nil {
				log.Printf("aggregator: source %s failed: %v", f.Name(), err)
				return nil
			}
			results[i] = jobs
			return nil
		})
	}
	// Goroutines only ever return nil; Wait is just the join point.
	_ = g.Wait()

	combined := make([]types.Job, 0)
	for _, jobs := range results {
		combined = append(combined, jobs...)
	}
	return combined
}
