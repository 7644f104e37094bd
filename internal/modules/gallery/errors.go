package gallery

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("photo not found")
	ErrUploadUnavailable = errors.New("image host not configured")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
