package upstream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-matcher/internal/types"
)

// stubFetcher is a Fetcher with canned results for aggregator tests.
type stubFetcher struct {
	name  string
	jobs  []types.Job
	err   error
	delay time.Duration
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch(ctx context.Context) ([]types.Job, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.jobs, s.err
}

// TestAggregator_PreservesSourceOrder tests that results come back in
// registration order even though sources are fetched concurrently.
func TestAggregator_PreservesSourceOrder(t *testing.T) {
	a := NewAggregator(
		&stubFetcher{name: "Jooble", jobs: []types.Job{{Title: "a1", Source: "Jooble"}, {Title: "a2", Source: "Jooble"}}, delay: 20 * time.Millisecond},
		&stubFetcher{name: "Jobindex", jobs: []types.Job{{Title: "b1", Source: "Jobindex"}}},
		&stubFetcher{name: "NAV", jobs: []types.Job{{Title: "c1", Source: "NAV"}}, delay: 5 * time.Millisecond},
	)

	jobs := a.FetchAll(context.Background())

	titles := make([]string, len(jobs))
	for i, j := range jobs {
		titles[i] = j.Title
	}
	assert.Equal(t, []string{"a1", "a2", "b1", "c1"}, titles)
}

// TestAggregator_FailedSourceContributesNothing tests that one failing source
// does not affect the others.
func TestAggregator_FailedSourceContributesNothing(t *testing.T) {
	a := NewAggregator(
		&stubFetcher{name: "Jooble", err: &Error{Source: "Jooble", Message: "HTTP status 500"}},
		&stubFetcher{name: "Jobindex", jobs: []types.Job{{Title: "survivor"}}},
		&stubFetcher{name: "NAV", err: &Error{Source: "NAV", Message: "request failed"}},
	)

	jobs := a.FetchAll(context.Background())

	assert.Len(t, jobs, 1)
	assert.Equal(t, "survivor", jobs[0].Title)
}

// TestAggregator_AllSourcesFail tests that total failure yields an empty,
// non-nil list.
func TestAggregator_AllSourcesFail(t *testing.T) {
	a := NewAggregator(
		&stubFetcher{name: "Jooble", err: &Error{Source: "Jooble", Message: "down"}},
		&stubFetcher{name: "Jobindex", err: &Error{Source: "Jobindex", Message: "down"}},
	)

	jobs := a.FetchAll(context.Background())

	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

// TestAggregator_NoFetchers tests the degenerate empty configuration.
func TestAggregator_NoFetchers(t *testing.T) {
	jobs := NewAggregator().FetchAll(context.Background())
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}
