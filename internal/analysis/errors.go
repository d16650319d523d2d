package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure signals that a remote document could not be fetched;
	// no inference call is attempted afterwards.
	ErrFetchFailure = errors.New("document fetch failed")

	// ErrMalformedResponse signals model output that is not parseable JSON.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrSchemaViolation signals parseable model output that does not match
	// the declared result schema.
	ErrSchemaViolation = errors.New("model response violates result schema")
)

// MalformedResponseError carries the raw model text alongside the parse
// failure so operators can diagnose non-compliant output. The raw text is
// never part of a successful result.
type MalformedResponseError struct {
	Raw   string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() []error {
	return []error{ErrMalformedResponse, e.Cause}
}
