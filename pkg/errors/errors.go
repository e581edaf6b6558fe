// Package errors provides structured error types for m2scope.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Failures during resolution fall into a small taxonomy. Per-descriptor
// failures (ARTIFACT_NOT_FOUND, PARSE_ERROR) are recoverable during a
// multi-artifact walk: the branch is skipped and the walk continues.
// REPOSITORY_UNAVAILABLE is fatal for the whole session.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "no descriptor for %s", coord)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing artifact
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, xmlErr, "parse %s", path)
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
	ErrCodeInvalidCoordinate Code = "INVALID_COORDINATE"
	ErrCodeInvalidInput      Code = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound              Code = "ARTIFACT_NOT_FOUND"
	ErrCodeParse                 Code = "PARSE_ERROR"
	ErrCodeParentUnresolved      Code = "PARENT_UNRESOLVED"
	ErrCodeRepositoryUnavailable Code = "REPOSITORY_UNAVAILABLE"

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

// Recoverable reports whether err is a per-descriptor failure that a
// multi-artifact walk may skip. Repository-level failures are not recoverable.
func Recoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodeNotFound, ErrCodeParse, ErrCodeParentUnresolved:
		return true
	}
	return false
}
