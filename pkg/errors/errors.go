// Package errors provides structured error types for orbital.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the generators, CLI and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The generator core fails with exactly five codes, all terminal for the
// query that raised them:
//   - INDEX_OUT_OF_RANGE: index beyond the collection supply or table length
//   - SCHEMA_OVERFLOW: field widths exceed the 128-bit packed integer
//   - MALFORMED_TABLE: table or template data failed structural validation
//   - UNKNOWN_TRAIT_CODE: a decoded code has no entry in its trait table
//   - MISSING_TEMPLATE: a resolved trait has no image fragment
//
// The remaining codes are used by the outer surfaces (config, CLI, server).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIndexOutOfRange, "index %d >= supply %d", i, n)
//	if errors.Is(err, errors.ErrCodeIndexOutOfRange) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedTable, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Generator core
	ErrCodeIndexOutOfRange  Code = "INDEX_OUT_OF_RANGE"
	ErrCodeSchemaOverflow   Code = "SCHEMA_OVERFLOW"
	ErrCodeMalformedTable   Code = "MALFORMED_TABLE"
	ErrCodeUnknownTraitCode Code = "UNKNOWN_TRAIT_CODE"
	ErrCodeMissingTemplate  Code = "MISSING_TEMPLATE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidEngine Code = "INVALID_ENGINE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

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
// Only the outermost *Error in the chain is consulted.
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

// IsCore reports whether code belongs to the generator core. Core errors are
// never retryable: the same index always fails the same way.
func IsCore(code Code) bool {
	switch code {
	case ErrCodeIndexOutOfRange, ErrCodeSchemaOverflow, ErrCodeMalformedTable,
		ErrCodeUnknownTraitCode, ErrCodeMissingTemplate:
		return true
	}
	return false
}
