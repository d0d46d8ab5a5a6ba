package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors used across services and handlers. Handlers map these to HTTP
// statuses with errors.Is, so wrapped errors must keep the sentinel in the chain.

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the operation lost a race against a concurrent
// update, e.g. the last open labour slot was taken between read and write.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrDeadlinePassed indicates that a time-based cutoff for the operation has passed.
var ErrDeadlinePassed = errors.New("deadline passed")

// ErrCapacityFull indicates that every labour slot of a posting is taken. It is
// returned both when the posting was already full and when the caller lost the
// race for the last slot.
var ErrCapacityFull = errors.New("work fully booked")

// ErrNotActive indicates that the target record is in a terminal state and no
// longer accepts mutations.
var ErrNotActive = errors.New("record not active")

// AppError wraps an underlying error with an HTTP-ish status code and a message
// that is safe to surface to callers.
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

// NewAppError creates a generic AppError with the given code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches apperrors.ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError creates an AppError that matches apperrors.ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError that matches apperrors.ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}
