package match

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultThreshold is the minimum similarity for a job to count as a match.
const DefaultThreshold = 0.3

// titleWeight repeats the job title in the composite embedding text to bias
// similarity toward the title over the noisier description.
const titleWeight = 3

// Embedder produces one fixed-dimension vector per input text. The résumé and
// job vectors must come from the same implementation to be comparable.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Ranker scores jobs against résumé text using an embedding model.
type Ranker struct {
	embedder  Embedder
	threshold float64
}

// NewRanker creates a ranker. A non-positive threshold falls back to
// DefaultThreshold.
func NewRanker(embedder Embedder, threshold float64) *Ranker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Ranker{embedder: embedder, threshold: threshold}
}

// Rank embeds the résumé and all jobs in one batch, keeps jobs whose cosine
// similarity meets the threshold, and returns them sorted by similarity
// descending (ties keep input order). An empty job list is a valid empty
// result; an empty résumé is a client error; an embedding failure is fatal.
func (r *Ranker) Rank(ctx context.Context, cvText string, jobs []types.Job) (*types.MatchResponse, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, &EmptyResumeError{}
	}
	if len(jobs) == 0 {
		return &types.MatchResponse{Matches: []types.Match{}, TotalFound: 0, Filtered: 0}, nil
	}

	texts := make([]string, 0, len(jobs)+1)
	texts = append(texts, cvText)
	for _, job := range jobs {
		texts = append(texts, compositeText(job))
	}

	vectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, &EmbeddingError{Cause: err}
	}
	if len(vectors) != len(texts) {
		return nil, &EmbeddingError{Cause: fmt.Errorf("got %d vectors for %d texts", len(vectors), len(texts))}
	}

	cvVector := vectors[0]
	matches := make([]types.Match, 0, len(jobs))
	for i, job := range jobs {
		score := clamp01(Cosine(cvVector, vectors[i+1]))
		if score < r.threshold {
			continue
		}
		matches = append(matches, types.Match{
			Job:        job,
			Similarity: round3(score),
			ATS:        subScore(score, 120, 0),
			Keywords:   subScore(score, 90, 10),
			Format:     subScore(score, 80, 20),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return &types.MatchResponse{
		Matches:    matches,
		TotalFound: len(jobs),
		Filtered:   len(matches),
	}, nil
}

// compositeText builds the weighted embedding input for a job: the title
// repeated, then company, then description.
func compositeText(job types.Job) string {
	return strings.Repeat(job.Title+" ", titleWeight) + job.Company + " " + job.Description
}

// subScore maps a similarity onto a presentational 0-100 sub-score.
func subScore(score, slope, offset float64) int {
	v := int(math.Round(score*slope + offset))
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
