// Package types provides type definitions for structured data used throughout the cv-matcher system.
package types

// Source tags identify which upstream produced a job.
const (
	SourceJooble   = "Jooble"
	SourceJobindex = "Jobindex"
	SourceNAV      = "NAV"
)

// Job is a normalized job posting. Every field serializes as a string so
// consumers never have to handle null or absent values; upstream fields that
// are missing map to "".
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Logo        string `json:"logo"`
	Source      string `json:"source"`
}

// Match is a job that scored at or above the similarity threshold against a
// résumé. The sub-scores are monotonic transforms of similarity, not
// independent signals.
type Match struct {
	Job
	Similarity float64 `json:"similarity"`
	ATS        int     `json:"ats"`
	Keywords   int     `json:"keywords"`
	Format     int     `json:"format"`
}

// JobsResponse is the response body for GET /jobs.
type JobsResponse struct {
	Total int   `json:"total"`
	Jobs  []Job `json:"jobs"`
}

// MatchResponse is the response body for POST /match.
type MatchResponse struct {
	Matches    []Match `json:"matches"`
	TotalFound int     `json:"total_found"`
	Filtered   int     `json:"filtered"`
}
