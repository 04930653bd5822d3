package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested document does not exist. Callers reading
	// the schedule singleton must treat this as "empty", not as a failure.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable means the document store could not be reached. Public
	// rendering degrades to placeholder content; the admin API surfaces it as
	// a retryable error.
	ErrUnavailable = errors.New("content store unavailable")
)

// ValidationError reports a malformed document caught at the store boundary
// before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
