package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultJobindexURL is the Jobindex job-search endpoint.
const DefaultJobindexURL = "https://api.jobindex.dk/api/v1/job/search"

// jobindexResponse is the raw Jobindex search response shape.
type jobindexResponse struct {
	Results []jobindexJob `json:"results"`
}

// jobindexJob is one raw posting from Jobindex. All fields are optional.
type jobindexJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	City        string `json:"city"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Logo        string `json:"logo"`
}

// JobindexFetcher issues one bulk search against the Jobindex API.
type JobindexFetcher struct {
	client  *http.Client
	url     string
	maxJobs int
}

// NewJobindex creates a Jobindex fetcher. An empty endpoint falls back to
// DefaultJobindexURL.
func NewJobindex(client *http.Client, endpoint string, maxJobs int) *JobindexFetcher {
	if endpoint == "" {
		endpoint = DefaultJobindexURL
	}
	return &JobindexFetcher{client: client, url: endpoint, maxJobs: maxJobs}
}

// Name returns the source tag for Jobindex jobs.
func (f *JobindexFetcher) Name() string {
	return types.SourceJobindex
}

// Fetch performs a single search with an empty query and the cap as the limit.
func (f *JobindexFetcher) Fetch(ctx context.Context) ([]types.Job, error) {
	u, err := url.Parse(f.url)
	if err != nil {
		return nil, &Error{Source: f.Name(), Message: "invalid endpoint URL", Cause: err}
	}
	q := u.Query()
	q.Set("q", "")
	q.Set("limit", strconv.Itoa(f.maxJobs))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{Source: f.Name(), Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{Source: f.Name(), Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: f.Name(), Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var raw jobindexResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &Error{Source: f.Name(), Message: "failed to decode response", Cause: err}
	}

	jobs := make([]types.Job, 0, len(raw.Results))
	for _, j := range raw.Results {
		logo := j.Logo
		if logo == "" {
			logo = Logo(j.Company)
		}
		jobs = append(jobs, types.Job{
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.City,
			Description: htmlToText(j.Description),
			URL:         j.URL,
			Logo:        logo,
			Source:      f.Name(),
		})
	}

	return capJobs(jobs, f.maxJobs), nil
}
