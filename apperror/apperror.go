// Package apperror defines the application's error taxonomy and its mapping
// to HTTP status codes. Services return *AppError values; handlers convert
// them to JSON responses without leaking internals to the client.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the store.
	DatabaseError
	// AuthError represents an authentication failure (bad credential,
	// missing/invalid/expired token).
	AuthError
	// UnauthorizedError represents an authorization failure (valid identity,
	// insufficient permissions).
	UnauthorizedError
	// NotFoundError represents a missing user, article, or comment.
	NotFoundError
	// ValidationError represents malformed or missing input, an invalid enum
	// value, or a malformed identifier.
	ValidationError
	// BadRequestError represents a generic bad request.
	BadRequestError
	// ConflictError represents a uniqueness conflict, e.g. a duplicate email.
	ConflictError
	// InternalError represents an unexpected store or crypto failure.
	InternalError
	// ExternalServiceError represents a failure of an external dependency.
	ExternalServiceError
)

// AppError is the application's error type. It wraps an optional underlying
// error for debugging while exposing only Message to API clients.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
// Conflicts map to 400: the API reports a duplicate email the same way as
// any other rejected registration input.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case UnauthorizedError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError, ConflictError:
		return http.StatusBadRequest
	case ExternalServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError of an arbitrary type.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return New(DatabaseError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return New(AuthError, message, underlying)
}

// NewUnauthorizedError creates an UnauthorizedError.
func NewUnauthorizedError(message string, underlying error) *AppError {
	return New(UnauthorizedError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return New(ValidationError, message, underlying)
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return New(BadRequestError, message, underlying)
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// NewExternalServiceError creates an ExternalServiceError.
func NewExternalServiceError(message string, underlying error) *AppError {
	return New(ExternalServiceError, message, underlying)
}

// ErrorResponse is the JSON payload returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"a description of the error"`
}

// ToResponse converts the error to its client-facing representation. Only the
// message is exposed, never the wrapped error.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError converts err to an *AppError if it is one.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool { return isType(err, AuthError) }

// IsUnauthorized reports whether err is an UnauthorizedError.
func IsUnauthorized(err error) bool { return isType(err, UnauthorizedError) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return isType(err, ValidationError) }

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool { return isType(err, ConflictError) }
