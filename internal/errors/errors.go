package errors

import (
	"errors"
	"fmt"
)

// Domain errors for the net worth tracker
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrUnknownBackend   = errors.New("unknown storage backend")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// PersistenceError reports a failed load or save against a storage backend.
// These are always logged and swallowed by the gateway.
type PersistenceError struct {
	Operation string
	Backend   string
	Cause     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during '%s' on %s: %v", e.Operation, e.Backend, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

func NewPersistenceError(operation, backend string, cause error) error {
	return &PersistenceError{
		Operation: operation,
		Backend:   backend,
		Cause:     cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrSnapshotNotFound)
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func IsPersistenceError(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}
