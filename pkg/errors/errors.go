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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors. These are fatal: the prompt is not rendered.
	ErrInvalidShell     ErrorCode = "INVALID_SHELL"
	ErrInvalidTheme     ErrorCode = "INVALID_THEME"
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigValid      ErrorCode = "CONFIG_INVALID"
	ErrUnknownSegment   ErrorCode = "UNKNOWN_SEGMENT"
	ErrDuplicateSegment ErrorCode = "DUPLICATE_SEGMENT"
	ErrAliasFormat      ErrorCode = "ALIAS_FORMAT"

	// Probe errors. Swallowed by the generator that hit them.
	ErrProbeFailed ErrorCode = "PROBE_FAILED"

	// Socket transport errors
	ErrSocketConnect ErrorCode = "SOCKET_CONNECT"
	ErrSocketTimeout ErrorCode = "SOCKET_TIMEOUT"
	ErrSocketReset   ErrorCode = "SOCKET_RESET"
	ErrSocketIO      ErrorCode = "SOCKET_IO"

	// Container API errors
	ErrHTTPStatus ErrorCode = "HTTP_STATUS"
	ErrDecode     ErrorCode = "DECODE"
)

// OpslineError represents a structured error with code and details
type OpslineError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OpslineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OpslineError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OpslineError) Is(target error) bool {
	var targetErr *OpslineError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Timeout reports whether the error is a socket timeout. It lets
// transport errors satisfy net.Error-style checks.
func (e *OpslineError) Timeout() bool {
	return e.Code == ErrSocketTimeout
}

// New creates a new OpslineError with the given code and message
func New(code ErrorCode, message string) *OpslineError {
	return &OpslineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OpslineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OpslineError {
	return &OpslineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OpslineError
func Wrap(err error, code ErrorCode, message string) *OpslineError {
	if err == nil {
		return nil
	}
	return &OpslineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OpslineError {
	if err == nil {
		return nil
	}
	return &OpslineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OpslineError) WithDetail(key string, value interface{}) *OpslineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var opsErr *OpslineError
	if errors.As(err, &opsErr) {
		return opsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OpslineError
func GetErrorCode(err error) ErrorCode {
	var opsErr *OpslineError
	if errors.As(err, &opsErr) {
		return opsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OpslineError
func GetErrorDetails(err error) map[string]interface{} {
	var opsErr *OpslineError
	if errors.As(err, &opsErr) {
		return opsErr.Details
	}
	return nil
}
