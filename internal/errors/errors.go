// Package apperrors defines structured error types for the conversion engine,
// allowing for a clear distinction between error kinds (invalid arguments,
// allocation failures, configuration) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Every structured type unwraps to one of the sentinel kinds so that callers can
// use errors.Is(err, ErrInvalidArgument) regardless of the concrete type.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every error produced by the engine matches exactly one
// of them through errors.Is.
var (
	// ErrInvalidArgument reports input the caller must fix: empty strings,
	// malformed alphabets, out-of-range bases, negative differences.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAllocationFailure reports that working memory for a limb sequence
	// or a character buffer could not be obtained. It is retryable in principle.
	ErrAllocationFailure = errors.New("allocation failure")
)

// Kind names returned by Kind.
const (
	KindInvalidArgument   = "invalid_argument"
	KindAllocationFailure = "allocation_failure"
	KindUnknown           = "unknown"
)

// ConfigError represents a user configuration error, such as an invalid
// environment value. It indicates that a converter cannot be built from the
// supplied settings.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// Unwrap classifies configuration errors as invalid arguments.
func (e ConfigError) Unwrap() error { return ErrInvalidArgument }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an error due to invalid input: an argument of
// an arithmetic operation or one of the strings handed to a conversion.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// Unwrap returns ErrInvalidArgument.
func (e ValidationError) Unwrap() error { return ErrInvalidArgument }

// NewValidationError creates a new ValidationError.
//
// Parameters:
//   - field: The name of the argument that failed validation.
//   - message: A description of why validation failed.
//   - value: The invalid value (optional).
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}

// AllocationError reports a limb sequence or buffer that could not be
// allocated.
type AllocationError struct {
	// Limbs is the requested size.
	Limbs int
	// Cause is the underlying runtime error, if any.
	Cause error
}

// Error returns the error message for an AllocationError.
func (e AllocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot allocate %d limbs: %v", e.Limbs, e.Cause)
	}
	return fmt.Sprintf("cannot allocate %d limbs", e.Limbs)
}

// Unwrap exposes both the kind and the runtime cause.
func (e AllocationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrAllocationFailure, e.Cause}
	}
	return []error{ErrAllocationFailure}
}

// NewAllocationError creates a new AllocationError.
func NewAllocationError(limbs int, cause error) error {
	return AllocationError{Limbs: limbs, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Kind classifies err into one of the Kind* names. A nil error has no kind
// and yields the empty string.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAllocationFailure):
		return KindAllocationFailure
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether repeating the failed call may succeed.
// Only allocation failures are transient; invalid arguments never are.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrAllocationFailure)
}
