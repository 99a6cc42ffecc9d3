package domain

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError creates a NotFoundError for the given resource and identifier.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError indicates that a request failed domain validation and was
// rejected before any write.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError indicates that an operation collided with concurrent state
// (optimistic lock failure, unique constraint violation, code collision).
type ConflictError struct {
	Message string
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidStateError indicates a disallowed lifecycle transition.
type InvalidStateError struct {
	From string
	To   string
}

// NewInvalidStateError creates an InvalidStateError for the attempted transition.
func NewInvalidStateError(from, to string) *InvalidStateError {
	return &InvalidStateError{From: from, To: to}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// StorageError wraps an underlying persistence failure. The operation names
// what the repository was doing when the failure occurred.
type StorageError struct {
	Operation string
	Err       error
}

// NewStorageError wraps err as a StorageError for the given operation.
func NewStorageError(operation string, err error) *StorageError {
	return &StorageError{Operation: operation, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsInvalidState reports whether err is (or wraps) an InvalidStateError.
func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}
