package models

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no row matched the requested identity.
var ErrNotFound = errors.New("no matching row found")

// ValidationError reports a missing required request field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// PersistenceError wraps a failed spreadsheet read or write.
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
