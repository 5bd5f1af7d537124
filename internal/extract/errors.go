// Package extract converts uploaded résumé documents into plain text.
package extract

import "fmt"

// UnsupportedTypeError is returned when an upload's extension is not one of
// the accepted document kinds.
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: only PDF and DOCX are allowed", e.Extension)
}

// ParseError represents a document that could not be parsed at all.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
