package comment

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("comment not found")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
