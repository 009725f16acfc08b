package services

import (
	"errors"
	"fmt"
)

// ErrDuplicateCheckIn is returned when a user already has a check-in
// recorded for the current calendar day.
var ErrDuplicateCheckIn = errors.New("already checked in today")

// ErrNotFound is returned when a referenced user or objective does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or missing input. It is never retried;
// the handler surfaces it as a 400 with the field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a datastore failure. The underlying error is kept
// for logging but never serialized to the client.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
