package service

import (
	"errors"
)

// ErrNotFound marks an unknown comment id.
var ErrNotFound = errors.New("comment not found")

// ValidationError flags a missing or malformed request field. Message is
// safe to surface to clients verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
