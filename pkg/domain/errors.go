package domain

import (
	"errors"
	"fmt"
)

// ErrCancelled is matched by every CancelledError via errors.Is.
var ErrCancelled = errors.New("cancelled")

// ErrInvalidOptions is matched by every InvalidOptionsError via errors.Is.
var ErrInvalidOptions = errors.New("invalid question set")

// InvalidOptionsError reports a malformed question set. It is returned
// before any prompting begins.
type InvalidOptionsError struct {
	Field  string
	Reason string
}

func (e *InvalidOptionsError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidOptions, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrInvalidOptions, e.Field, e.Reason)
}

func (e *InvalidOptionsError) Is(target error) bool {
	return target == ErrInvalidOptions
}

// CancelledError is returned when the operator closes the input channel
// before every question was answered. Answers holds the partial result.
type CancelledError struct {
	Answered int
	Answers  Answers
	Cause    error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("cancelled after giving %d answers", e.Answered)
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}
