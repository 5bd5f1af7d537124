package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultJoobleURL is the base URL of the Jooble job-search API.
const DefaultJoobleURL = "https://jooble.org"

// joobleRequest is the search payload sent per location. Keywords stay empty
// so the location alone scopes the results.
type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

// joobleResponse is the raw Jooble search response shape.
type joobleResponse struct {
	Jobs []joobleJob `json:"jobs"`
}

// joobleJob is one raw posting from Jooble. All fields are optional.
type joobleJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Snippet     string `json:"snippet"`
	Link        string `json:"link"`
	CompanyLogo string `json:"company_logo"`
}

// JoobleFetcher queries the Jooble API once per catalog location and merges
// the results. Per-location failures skip that location only.
type JoobleFetcher struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	locations []string
	maxJobs   int
}

// NewJooble creates a Jooble fetcher fanned out over the given locations.
// An empty baseURL falls back to DefaultJoobleURL.
func NewJooble(client *http.Client, baseURL, apiKey string, locs []string, maxJobs int) *JoobleFetcher {
	if baseURL == "" {
		baseURL = DefaultJoobleURL
	}
	return &JoobleFetcher{
		client:    client,
		baseURL:   baseURL,
		apiKey:    apiKey,
		locations: locs,
		maxJobs:   maxJobs,
	}
}

// Name returns the source tag for Jooble jobs.
func (f *JoobleFetcher) Name() string {
	return types.SourceJooble
}

// Fetch issues one search per location until the running total reaches the
// cap. It only fails when the context is done; individual location failures
// are logged and skipped.
func (f *JoobleFetcher) Fetch(ctx context.Context) ([]types.Job, error) {
	jobs := make([]types.Job, 0, f.maxJobs)

	for _, loc := range f.locations {
		if len(jobs) >= f.maxJobs {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, &Error{Source: f.Name(), Message: "fetch canceled", Cause: err}
		}

		locJobs, err := f.searchLocation(ctx, loc)
		if err != nil {
			log.Printf("jooble: skipping location %q: %v", loc, err)
			continue
		}
		jobs = append(jobs, locJobs...)
	}

	return capJobs(jobs, f.maxJobs), nil
}

// searchLocation issues a single location-scoped search request.
func (f *JoobleFetcher) searchLocation(ctx context.Context, loc string) ([]types.Job, error) {
	payload, err := json.Marshal(joobleRequest{Keywords: "", Location: loc})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := f.baseURL + "/api/" + f.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	var raw joobleResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	jobs := make([]types.Job, 0, len(raw.Jobs))
	for _, j := range raw.Jobs {
		jobs = append(jobs, f.normalize(j))
	}
	return jobs, nil
}

// normalize maps a raw Jooble posting onto the common Job shape.
func (f *JoobleFetcher) normalize(j joobleJob) types.Job {
	logo := j.CompanyLogo
	if logo == "" {
		logo = Logo(j.Company)
	}
	return types.Job{
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: htmlToText(j.Snippet),
		URL:         j.Link,
		Logo:        logo,
		Source:      f.Name(),
	}
}
