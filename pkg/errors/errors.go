// Package errors provides structured error types for the word search generator.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - UNSUPPORTED_*: Alphabet resolution failures (language or case)
//   - INVALID_*: Input validation failures
//   - WORD_TOO_LONG, PLACEMENT_FAILED: Per-word outcomes, never fatal to a batch
//   - NETWORK_*: Network-related errors while fetching a catalog
//   - SAMPLING_EXHAUSTED, INTERNAL_*: Defects that should never occur
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedLanguage, "no alphabet for %q", lang)
//	if errors.Is(err, errors.ErrCodeUnsupportedLanguage) {
//	    // Ask the user for another language
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Alphabet resolution errors
	ErrCodeUnsupportedLanguage Code = "UNSUPPORTED_LANGUAGE"
	ErrCodeUnsupportedCase     Code = "UNSUPPORTED_CASE"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidWord    Code = "INVALID_WORD"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidCatalog Code = "INVALID_CATALOG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Placement outcomes
	ErrCodeWordTooLong     Code = "WORD_TOO_LONG"
	ErrCodePlacementFailed Code = "PLACEMENT_FAILED"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"
	ErrCodeTimeout  Code = "TIMEOUT"

	// Internal errors
	ErrCodeSamplingExhausted Code = "SAMPLING_EXHAUSTED"
	ErrCodeInternal          Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error with a matching code,
// so an outer wrapper with a different code does not hide an inner match.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
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

// IsDefect reports whether err signals a broken internal invariant rather
// than bad input. Defects should be surfaced loudly, never retried.
func IsDefect(err error) bool {
	return Is(err, ErrCodeSamplingExhausted) || Is(err, ErrCodeInternal)
}
