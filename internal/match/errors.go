// Package match scores jobs against a résumé by embedding both and ranking
// jobs by cosine similarity.
package match

import "fmt"

// EmptyResumeError is returned when the extracted résumé text has no content.
type EmptyResumeError struct{}

func (e *EmptyResumeError) Error() string {
	return "CV is empty"
}

// EmbeddingError represents a failure of the embedding model. It is fatal for
// the match request and is never retried.
type EmbeddingError struct {
	Cause error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding failed: %v", e.Cause)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Cause
}
