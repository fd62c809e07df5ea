// Package errors defines the application's business error taxonomy.
// Every error carries a fixed HTTP status and the label surfaced in the
// response body, so the delivery layer can map errors without switch tables.
package errors

import (
	"fmt"
	"net/http"

	"fitfamily/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Label() string   // Short error label surfaced to clients, e.g. "Duplicate Email"
	Message() string // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	label    string
	message  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, label, message string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		label:    label,
		message:  message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithMessagef returns a copy of the error with a formatted client-facing message.
// The copy still matches the original via errors.Is.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		label:    e.label,
		message:  fmt.Sprintf(format, args...),
	}
}

// Is matches errors by label, so derived copies created with WithMessagef
// still compare equal to their predefined base error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.label == e.label
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Label returns the short error label surfaced to clients
func (e *BaseError) Label() string {
	return e.label
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Authentication-related errors
	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"Duplicate Email",
		"Email is already registered",
	)

	// ErrInvalidCredentials is returned both for unknown emails and wrong
	// passwords so responses never reveal which check failed.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"Authentication Failed",
		"Invalid email or password",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusForbidden,
		"Access Denied",
		"Invalid or missing authentication token",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"User Not Found",
		"User not found",
	)

	// Family-related errors
	ErrAlreadyInFamily = NewBaseError(
		http.StatusConflict,
		"Family Conflict",
		"You are already a member of a family",
	)

	ErrInvalidJoinCode = NewBaseError(
		http.StatusNotFound,
		"Invalid Join Code",
		"Invalid join code. Please check and try again.",
	)

	ErrFamilyNotFound = NewBaseError(
		http.StatusNotFound,
		"Family Not Found",
		"You are not a member of any family",
	)

	// ErrJoinCodeExhausted is returned when the bounded join code generation
	// loop fails to find a free code.
	ErrJoinCodeExhausted = NewBaseError(
		http.StatusInternalServerError,
		"Join Code Exhausted",
		"Could not generate a unique join code, please try again",
	)

	// Food catalog errors
	ErrFoodNotFound = NewBaseError(
		http.StatusNotFound,
		"Food Not Found",
		"Food not found",
	)

	ErrPortionNotFound = NewBaseError(
		http.StatusNotFound,
		"Food Portion Not Found",
		"Food portion not found",
	)

	ErrInvalidPortion = NewBaseError(
		http.StatusBadRequest,
		"Invalid Food Portion",
		"The selected portion does not belong to the selected food",
	)

	// Food log errors. A log that exists but belongs to another user yields
	// the same error as a missing one, so ids cannot be enumerated.
	ErrLogNotFound = NewBaseError(
		http.StatusNotFound,
		"Food Log Not Found",
		"Food log not found or you do not have permission to delete it",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"Validation Failed",
		"Input validation failed",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"Internal Server Error",
		"An unexpected error occurred",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Label returns the short error label surfaced to clients
func (e *DatabaseExecuteError) Label() string {
	return "Internal Server Error"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information for server-side logging
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
