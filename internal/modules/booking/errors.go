package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("booking not found")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// ValidationError names the field that failed so forms can surface the
// error inline. It is user input, never a system fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
