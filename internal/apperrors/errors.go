package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the acting user is not allowed to perform the
// requested action on the target resource (wrong role, wrong department, or
// not the owning employee).
var ErrForbidden = errors.New("action forbidden for this actor")

// ErrMissingRemarks indicates that an action requiring a justification was
// called with empty remarks.
var ErrMissingRemarks = errors.New("remarks are required for this action")

// ErrConflict indicates that the optimistic-concurrency precondition on a
// write failed: the record changed between read and write. Callers should
// reload and retry.
var ErrConflict = errors.New("concurrent modification detected")

// ErrAuditWrite indicates that the status mutation could not be made durable
// together with its audit trail entry; the whole operation is rolled back.
var ErrAuditWrite = errors.New("failed to append audit trail entry")

// AppError wraps an underlying error with an HTTP-ish status code and a
// message suitable for logging.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
