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

	// Project errors
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"

	// Emission errors
	ErrFileWrite      ErrorCode = "FILE_WRITE"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrArtifactExists ErrorCode = "ARTIFACT_EXISTS"

	// Patch errors
	ErrAnchorNotFound ErrorCode = "ANCHOR_NOT_FOUND"
	ErrHostFileRead   ErrorCode = "HOST_FILE_READ"
	ErrHostFileWrite  ErrorCode = "HOST_FILE_WRITE"
)

// LanggenError represents a structured error with code and details
type LanggenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LanggenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LanggenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LanggenError) Is(target error) bool {
	var targetErr *LanggenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LanggenError with the given code and message
func New(code ErrorCode, message string) *LanggenError {
	return &LanggenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LanggenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LanggenError {
	return &LanggenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LanggenError
func Wrap(err error, code ErrorCode, message string) *LanggenError {
	if err == nil {
		return nil
	}
	return &LanggenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LanggenError {
	if err == nil {
		return nil
	}
	return &LanggenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LanggenError) WithDetail(key string, value interface{}) *LanggenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var langgenErr *LanggenError
	if errors.As(err, &langgenErr) {
		return langgenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LanggenError
func GetErrorCode(err error) ErrorCode {
	var langgenErr *LanggenError
	if errors.As(err, &langgenErr) {
		return langgenErr.Code
	}
	return ErrUnknown
}
