// Package errors provides structured error types for the rauzy toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLetterMultiplicity, "letter %q occurs %d times", letter, n)
//	if errors.Is(err, errors.ErrCodeLetterMultiplicity) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "scenario %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure kinds the toolkit distinguishes.
const (
	// Input validation, raised at construction.
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeLetterMultiplicity Code = "LETTER_MULTIPLICITY"
	ErrCodeInvalidFlipLetter  Code = "INVALID_FLIP_LETTER"

	// Induction and diagram traversal.
	ErrCodeDegenerateInduction Code = "DEGENERATE_INDUCTION"
	ErrCodeIncompatiblePath    Code = "INCOMPATIBLE_PATH"
	ErrCodeInvalidMoveLabel    Code = "INVALID_MOVE_LABEL"
	ErrCodeExplorationLimit    Code = "EXPLORATION_LIMIT"

	// Numeric runtime validation.
	ErrCodeLengthMismatch     Code = "LENGTH_MISMATCH"
	ErrCodeNonPositiveLength  Code = "NON_POSITIVE_LENGTH"
	ErrCodeInvalidLengthValue Code = "INVALID_LENGTH_VALUE"

	// Capability mismatches.
	ErrCodeNotFlippable Code = "NOT_FLIPPABLE"

	// Unexpected internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
