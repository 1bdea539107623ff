package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core failure taxonomy. Callers classify with
// errors.Is; handlers map each class to a distinct HTTP status.
var (
	// ErrNotFound marks a requested entity that does not exist remotely.
	ErrNotFound = errors.New("not found")

	// ErrPolicyViolation marks an action the acting identity may not
	// perform. It is raised before any remote call is made.
	ErrPolicyViolation = errors.New("policy violation")

	// ErrValidation marks required fields missing or malformed. The
	// action is blocked entirely; nothing is partially submitted.
	ErrValidation = errors.New("validation failed")

	// ErrTimedOut marks a remote call that did not complete within the
	// configured deadline.
	ErrTimedOut = errors.New("request timed out")
)

// NotFoundf wraps ErrNotFound with context.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// PolicyViolationf wraps ErrPolicyViolation with context.
func PolicyViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPolicyViolation, fmt.Sprintf(format, args...))
}

// ValidationError wraps a validator error into the taxonomy.
func ValidationError(err error) error {
	return fmt.Errorf("%w: %s", ErrValidation, err)
}

// NetworkError is any remote call that failed to complete cleanly:
// transport errors and non-2xx responses other than 404.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
