package apperrors

import "errors"

// Common errors
var (
	// Session errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrInvalidFormat   = errors.New("invalid token format")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Store errors
	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrIntegrity        = errors.New("record store integrity violation")
)

// Profile Errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Course Errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// NewValidationError creates a validation error naming the offending field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewIntegrityError creates an integrity error describing the violated invariant.
func NewIntegrityError(message string) error {
	return &CustomError{
		Err:     ErrIntegrity,
		Message: message,
	}
}

// NewStoreUnavailableError wraps a transient store failure.
func NewStoreUnavailableError(message string) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// FieldOf returns the offending field name if err carries one.
func FieldOf(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Field
	}
	return ""
}
