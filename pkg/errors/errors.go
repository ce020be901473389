package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried across layers.
// Design notes:
// 1. Code identifies the error class so callers can branch without string matching.
// 2. Message is safe to return to clients.
// 3. Err holds the underlying cause; it is logged, never serialized to a response.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a code and a client-facing message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates an AppError with a formatted message.
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap converts an infrastructure error (database, network) into an internal
// AppError, hiding the underlying detail from clients.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf wraps with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// Error codes
// =========================================
// Convention:
// - 400xx: validation errors
// - 401xx: authentication errors
// - 404xx: missing resources
// - 409xx: conflicts
// - 500xx: server errors (database, external services, unexpected)

const (
	// System errors
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeCacheError    = 50002

	// Authentication
	ErrCodeUnauthorized = 40100
	ErrCodeInvalidToken = 40101
	ErrCodeTokenExpired = 40102

	// Missing resources
	ErrCodeNotFound     = 40400
	ErrCodeBookNotFound = 40402

	// Conflicts
	ErrCodeDuplicateEntry = 40900
	ErrCodeISBNDuplicate  = 40901

	// Validation
	ErrCodeInvalidArgument = 40000
	ErrCodeBindError       = 40001
)

// Predeclared errors shared across packages.
var (
	ErrInternal      = New(ErrCodeInternal, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrCacheError    = New(ErrCodeCacheError, "cache service error")

	ErrUnauthorized = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidToken = New(ErrCodeInvalidToken, "invalid authentication token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "authentication token expired")

	ErrInvalidArgument = New(ErrCodeInvalidArgument, "invalid argument")
	ErrBindError       = New(ErrCodeBindError, "malformed request body")
)

// =========================================
// Helpers
// =========================================

// IsAppError reports whether err carries an AppError anywhere in its chain.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as internal.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}

// HTTPStatus maps the error code class to an HTTP status.
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 50000:
		return http.StatusInternalServerError
	case e.Code >= 40900:
		return http.StatusConflict
	case e.Code >= 40400:
		return http.StatusNotFound
	case e.Code >= 40100:
		return http.StatusUnauthorized
	case e.Code >= 40000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
