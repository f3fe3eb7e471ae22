// Package errors provides a typed error system for exit code handling.
//
// Exit code conventions:
//   - 1: Runtime errors (missing input files, file I/O)
//   - 2: Validation/usage errors (invalid flags, malformed input)
package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation or usage error.
// These errors indicate improper input or configuration and should result in exit code 2.
type ValidationError struct {
	Message string
	Cause   error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// RuntimeError represents a runtime error.
// These errors indicate failures during execution (I/O, missing files) and should result in exit code 1.
type RuntimeError struct {
	Message string
	Cause   error
}

// Error implements the error interface for RuntimeError.
func (e *RuntimeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError with the given message and cause.
func NewValidationError(msg string, cause error) error {
	return &ValidationError{
		Message: msg,
		Cause:   cause,
	}
}

// NewRuntimeError creates a new RuntimeError with the given message and cause.
func NewRuntimeError(msg string, cause error) error {
	return &RuntimeError{
		Message: msg,
		Cause:   cause,
	}
}

// GetExitCode extracts the appropriate exit code from an error.
// Returns:
//   - 2 for ValidationError
//   - 1 for RuntimeError
//   - 1 for unknown errors
func GetExitCode(err error) int {
	var validationErr *ValidationError
	var runtimeErr *RuntimeError

	if errors.As(err, &validationErr) {
		return 2
	}
	if errors.As(err, &runtimeErr) {
		return 1
	}
	return 1
}
