package apperror

import (
	"errors"
	"fmt"
)

// Sentinel categories. Handlers map these to HTTP status codes with
// errors.Is, so services can wrap freely with fmt.Errorf("...: %w", err).
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store error")
)

// AppError carries a category sentinel plus a human-readable message.
type AppError struct {
	Err     error  // category sentinel
	Message string // surfaced to the client for validation/not-found
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing resource. Mapped to 404.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// Validation reports a malformed or missing request field. Mapped to 400.
func Validation(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}

// Store reports a failed persistence call. Mapped to 500; the underlying
// cause stays in the message for server logs only.
func Store(op string, err error) *AppError {
	return &AppError{
		Err:     ErrStore,
		Message: fmt.Sprintf("%s failed: %v", op, err),
	}
}
