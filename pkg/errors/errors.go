package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Token errors
	ErrUnknownToken ErrorCode = "UNKNOWN_TOKEN"
	ErrTokenInvalid ErrorCode = "TOKEN_INVALID"

	// Scale errors
	ErrScaleInvalid ErrorCode = "SCALE_INVALID"

	// Output errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// QuireError represents a structured error with code and details
type QuireError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *QuireError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *QuireError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *QuireError) Is(target error) bool {
	var targetErr *QuireError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new QuireError with the given code and message
func New(code ErrorCode, message string) *QuireError {
	return &QuireError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new QuireError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *QuireError {
	return &QuireError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a QuireError
func Wrap(err error, code ErrorCode, message string) *QuireError {
	if err == nil {
		return nil
	}
	return &QuireError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *QuireError {
	if err == nil {
		return nil
	}
	return &QuireError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail field to the error
func (e *QuireError) WithDetail(key string, value interface{}) *QuireError {
	e.Details[key] = value
	return e
}

// CodeOf extracts the error code from an error, returning ErrUnknown
// for errors that are not QuireErrors
func CodeOf(err error) ErrorCode {
	var qe *QuireError
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	var qe *QuireError
	if errors.As(err, &qe) {
		return qe.Code == code
	}
	return false
}
