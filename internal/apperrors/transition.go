package apperrors

import (
	"errors"
	"fmt"
)

// InvalidTransitionError is returned when an action is not legal from the
// TRF's current status. It carries the status the action would have needed so
// callers can tell the user to reload instead of blindly retrying.
type InvalidTransitionError struct {
	Expected string
	Actual   string
}

func (e *InvalidTransitionError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("no transition allowed from status %s", e.Actual)
	}
	return fmt.Sprintf("invalid transition: expected status %s, got %s", e.Expected, e.Actual)
}

// NewInvalidTransition builds an InvalidTransitionError for a TRF currently
// in actual where the action requires expected.
func NewInvalidTransition(expected, actual string) *InvalidTransitionError {
	return &InvalidTransitionError{Expected: expected, Actual: actual}
}

// AsInvalidTransition reports whether err wraps an InvalidTransitionError.
func AsInvalidTransition(err error) (*InvalidTransitionError, bool) {
	var ite *InvalidTransitionError
	if errors.As(err, &ite) {
		return ite, true
	}
	return nil, false
}
