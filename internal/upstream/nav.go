package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultNavURL is the NAV (arbeidsplassen.no) public job feed endpoint.
const DefaultNavURL = "https://arbeidsplassen.nav.no/public-feed/api/v1/ads"

// navResponse is the raw NAV public-feed response shape.
type navResponse struct {
	Content []navAd `json:"content"`
}

// navAd is one raw ad from the NAV feed. All fields are optional.
type navAd struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Employer    navEmployer `json:"employer"`
	Location    navLocation `json:"location"`
}

type navEmployer struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type navLocation struct {
	Municipal string `json:"municipal"`
}

// NavFetcher issues one bulk request against the NAV public feed.
type NavFetcher struct {
	client  *http.Client
	url     string
	maxJobs int
}

// NewNav creates a NAV fetcher. An empty endpoint falls back to DefaultNavURL.
func NewNav(client *http.Client, endpoint string, maxJobs int) *NavFetcher {
	if endpoint == "" {
		endpoint = DefaultNavURL
	}
	return &NavFetcher{client: client, url: endpoint, maxJobs: maxJobs}
}

// Name returns the source tag for NAV jobs.
func (f *NavFetcher) Name() string {
	return types.SourceNAV
}

// Fetch retrieves the current page of the public feed.
func (f *NavFetcher) Fetch(ctx context.Context) ([]types.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
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

	var raw navResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &Error{Source: f.Name(), Message: "failed to decode response", Cause: err}
	}

	jobs := make([]types.Job, 0, len(raw.Content))
	for _, ad := range raw.Content {
		logo := ad.Employer.LogoURL
		if logo == "" {
			logo = Logo(ad.Employer.Name)
		}
		jobs = append(jobs, types.Job{
			Title:       ad.Title,
			Company:     ad.Employer.Name,
			Location:    ad.Location.Municipal,
			Description: htmlToText(ad.Description),
			URL:         ad.URL,
			Logo:        logo,
			Source:      f.Name(),
		})
	}

	return capJobs(jobs, f.maxJobs), nil
}
