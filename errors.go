package tweetsent

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrTypeKind      = errors.New("wrong argument kind")
	ErrSchema        = errors.New("lexicon schema mismatch")
	ErrEmptyCategory = errors.New("empty collection")
	ErrInvalidWord   = errors.New("invalid word")
	ErrDuplicateWord = errors.New("duplicate word")
)

// ValidationError reports which collection broke which rule.
type ValidationError struct {
	Kind       error  // One of the Err* sentinels above.
	Collection string // e.g. "positive", "all", "tweet"
	Message    string
}

func (e *ValidationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind.Error(), e.Collection, e.Message)
}

// Unwrap returns the error kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, collection, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:       kind,
		Collection: collection,
		Message:    fmt.Sprintf(format, args...),
	}
}
