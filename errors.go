package fbconnect

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is()
var (
	// ErrSetup indicates the external entry point raised synchronously before
	// delivering any callback result.
	ErrSetup = errors.New("external call setup failed")

	// ErrInvalidInput indicates validation failure for input parameters.
	ErrInvalidInput = errors.New("invalid input")
)

// SetupError represents a synchronous panic raised by an external entry point
// while the call was being started. It is routed through the same failure
// channel as callback-delivered errors, so callers never distinguish "threw
// while starting" from "callback reported an error".
type SetupError struct {
	Op    string // operation that was being started
	Cause any    // the recovered value, message preserved unmodified
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Is implements errors.Is() for comparing with ErrSetup.
func (e *SetupError) Is(target error) bool {
	return target == ErrSetup
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Validation error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Is implements errors.Is() for comparing with ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Unwrap returns ErrInvalidInput for error chain.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
