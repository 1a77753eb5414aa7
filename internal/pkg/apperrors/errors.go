package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Catalog errors
var (
	ErrNoCourseData       = errors.New("no course data loaded")
	ErrEmptyCourseData    = errors.New("course data contains no usable records")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCourseNotFound     = errors.New("course not found")
)

// Recommendation errors
var (
	ErrNoInterests = errors.New("no interest text provided")
)

// External service errors
var (
	ErrMissingAPIKey      = errors.New("API key is not configured")
	ErrExternalService    = errors.New("external service request failed")
	ErrMalformedResponse  = errors.New("malformed external service response")
	ErrRelayNotConfigured = errors.New("relay credential is not configured")
)

// CustomError wraps a sentinel error with a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error returns the custom message when set, the wrapped error otherwise.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap exposes the wrapped sentinel for errors.Is checks.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
