package tracker

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a brand or drink reference that did not resolve.
var ErrNotFound = errors.New("not found")

// ValidationError rejects create input before it reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
