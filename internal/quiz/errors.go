package quiz

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Handlers are the only layer that maps these to HTTP
// statuses; everything else wraps and propagates.
var (
	// ErrInvalidInput: the caller supplied an empty or missing required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound: lookup miss on a quiz, flashcard set or result.
	ErrNotFound = errors.New("not found")

	// ErrUpstream: the generative-text service was unreachable, rate-limited
	// or returned an error. Often transient.
	ErrUpstream = errors.New("generation service error")

	// ErrMalformedResponse: the sanitized model output is not valid JSON.
	// Retrying without a prompt change is pointless.
	ErrMalformedResponse = errors.New("malformed generation response")
)

// SchemaViolationError reports generated content that parsed but fails the
// shape or cardinality checks. Element names the first offending field,
// e.g. "questions[3].options".
type SchemaViolationError struct {
	Element string
	Reason  string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Element, e.Reason)
}
