package portalshell

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the portal configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownAction is the panic cause for navigation to an action the
	// route table does not know. A missing route is a programming error,
	// caught during development, not handled at runtime.
	ErrUnknownAction = errors.New("unknown action")
)

// PortalError represents an error with operation context
type PortalError struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

// Error implements the error interface
func (e *PortalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *PortalError) Unwrap() error {
	return e.Err
}

// NewPortalError creates a new PortalError
func NewPortalError(op string, err error) *PortalError {
	return &PortalError{Op: op, Err: err}
}
