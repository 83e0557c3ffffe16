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

// ErrUnauthorized indicates that the caller is not authenticated or the credentials are invalid.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that the presented refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP-style status code alongside a message and an
// optional wrapped cause. Repositories use it for infrastructure failures.
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

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
