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

	// Prerequisite errors
	ErrNixMissing   ErrorCode = "NIX_MISSING"
	ErrFlakesEnable ErrorCode = "FLAKES_ENABLE"

	// Profile errors
	ErrProfileInvalid ErrorCode = "PROFILE_INVALID"
	ErrActivateFailed ErrorCode = "ACTIVATE_FAILED"

	// Identity errors
	ErrIdentityWrite ErrorCode = "IDENTITY_WRITE"
	ErrApplyFailed   ErrorCode = "APPLY_FAILED"

	// Dotfile errors
	ErrBackupFailed  ErrorCode = "BACKUP_FAILED"
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// External command errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// Prompt errors
	ErrPromptRead ErrorCode = "PROMPT_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// NixupError represents a structured error with code and details
type NixupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NixupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NixupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NixupError) Is(target error) bool {
	var targetErr *NixupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NixupError with the given code and message
func New(code ErrorCode, message string) *NixupError {
	return &NixupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NixupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NixupError {
	return &NixupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NixupError
func Wrap(err error, code ErrorCode, message string) *NixupError {
	if err == nil {
		return nil
	}
	return &NixupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NixupError {
	if err == nil {
		return nil
	}
	return &NixupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NixupError) WithDetail(key string, value interface{}) *NixupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nixupErr *NixupError
	if errors.As(err, &nixupErr) {
		return nixupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NixupError
func GetErrorCode(err error) ErrorCode {
	var nixupErr *NixupError
	if errors.As(err, &nixupErr) {
		return nixupErr.Code
	}
	return ErrUnknown
}
