// Package errors provides structured error types for dskit.
//
// Layout and reducer functions never fail; errors arise at the boundaries:
// decoding input documents, validating options, strict-mode validation of
// adjacency lists and trees, reading configuration, and talking to caches.
// Every boundary error carries a [Code] so the CLI and HTTP service can map
// it to an exit message or status without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND, FILE_NOT_FOUND: Missing resources
//   - INTERNAL_ERROR, UNSUPPORTED: Everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "node size must be positive, got %v", size)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidAdjacency Code = "INVALID_ADJACENCY"
	ErrCodeInvalidTree      Code = "INVALID_TREE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidAdjacency,
		ErrCodeInvalidTree, ErrCodeInvalidConfig, ErrCodeInvalidPath:
		return true
	}
	return false
}

// DetailedError is an Error with a list of itemized problems, such as the
// diagnostics of a strict validation pass.
type DetailedError struct {
	Err     *Error
	Details []string
}

// Unwrap returns the coded error so Is and GetCode see its code.
func (e *DetailedError) Unwrap() error { return e.Err }

// Error implements the error interface, appending the number of details.
func (e *DetailedError) Error() string {
	if len(e.Details) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (%d problems)", e.Err.Error(), len(e.Details))
}

// WithDetails creates a DetailedError.
func WithDetails(code Code, details []string, format string, args ...any) *DetailedError {
	return &DetailedError{Err: New(code, format, args...), Details: details}
}

// Details returns the itemized problems of err, if it carries any.
func Details(err error) []string {
	var d *DetailedError
	if errors.As(err, &d) {
		return d.Details
	}
	return nil
}
