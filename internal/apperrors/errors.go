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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller lacks the permission for the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrStorage indicates that persisting an entity failed. The edit session is left untouched.
var ErrStorage = errors.New("storage error")

// ErrAccount indicates that creating or linking an account failed before any account id was assigned.
var ErrAccount = errors.New("account error")

// ErrLookup indicates that an entity type or ticket type id could not be resolved.
var ErrLookup = errors.New("lookup error")

// ErrPreconditionNotMet indicates a command was requested while its gate was closed.
// Commands never return it themselves; callers use it to report a refused command.
var ErrPreconditionNotMet = errors.New("precondition not met")

// AppError carries an HTTP-ish status code alongside a wrapped infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }
