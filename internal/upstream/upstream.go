// Package upstream queries external job-listing providers and normalizes
// their heterogeneous responses into the common Job record. Each provider is
// wrapped in a Fetcher whose errors are the caller's to handle; the Aggregator
// applies the degrade-to-empty policy.
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultTimeout bounds every upstream HTTP request.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for upstream requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CVMatcher/1.0)"

// Fetcher retrieves normalized jobs from one upstream source.
type Fetcher interface {
	// Name returns the source tag attached to every job this fetcher produces.
	Name() string
	// Fetch returns the normalized jobs, capped at the fetcher's configured
	// maximum. A returned error means this source contributes nothing.
	Fetch(ctx context.Context) ([]types.Job, error)
}

// Error represents a failure while querying an upstream source.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error from %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream error from %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewHTTPClient returns the HTTP client shared by the fetchers. A zero timeout
// falls back to DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// capJobs truncates jobs to at most limit entries.
func capJobs(jobs []types.Job, limit int) []types.Job {
	if limit > 0 && len(jobs) > limit {
		return jobs[:limit]
	}
	return jobs
}
