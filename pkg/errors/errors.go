// Package errors provides structured error types for colorgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the coloring core, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - INCOMPLETE_*: Preconditions on partially built values
//   - NOT_FOUND: Unknown algorithm or resource
//   - TOO_LARGE: Input above a configured size limit
//   - RATE_LIMITED: Request refused by the API rate limiter
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOrder, "vertex %v appears twice", v)
//	if errors.Is(err, errors.ErrCodeInvalidOrder) {
//	    // Handle malformed ordering
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidGraph, origErr, "edge %s-%s", u, v)
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidOrder  Code = "INVALID_ORDER"
	ErrCodeInvalidRatios Code = "INVALID_RATIOS"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Precondition errors
	ErrCodeIncompleteColoring Code = "INCOMPLETE_COLORING"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Size limit errors
	ErrCodeTooLarge Code = "TOO_LARGE"

	// Throttling errors
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
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
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.Code()
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

// IsValidation reports whether err carries one of the INVALID_* or
// INCOMPLETE_* codes, i.e. the caller supplied bad input.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidOrder, ErrCodeInvalidRatios,
		ErrCodeInvalidGraph, ErrCodeInvalidConfig, ErrCodeIncompleteColoring:
		return true
	}
	return false
}

// RateLimitedError reports a request refused by a rate limiter.
type RateLimitedError struct {
	RetryAfter time.Duration // zero when unknown
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if secs := e.Seconds(); secs > 0 {
		return fmt.Sprintf("%s: retry after %d seconds", ErrCodeRateLimited, secs)
	}
	return string(ErrCodeRateLimited)
}

// Code returns ErrCodeRateLimited.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}

// Seconds returns RetryAfter rounded up to whole seconds, as sent in a
// Retry-After header.
func (e *RateLimitedError) Seconds() int {
	return int((e.RetryAfter + time.Second - 1) / time.Second)
}
