package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrorKind represents different categories of store errors
type ErrorKind int

const (
	// ErrorKindUnknown represents an unclassified storage engine error
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindConstraintViolation represents a unique or foreign-key
	// constraint failure
	ErrorKindConstraintViolation
	// ErrorKindStorageUnavailable represents a backing file that cannot be
	// opened or written
	ErrorKindStorageUnavailable
)

// Error represents a structured store error with kind information
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind checks if the error is of a specific kind
func (e *Error) IsKind(kind ErrorKind) bool {
	return e.Kind == kind
}

// NewConstraintViolationError creates an error for a failed unique or
// foreign-key constraint
func NewConstraintViolationError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrorKindConstraintViolation,
		Message: message,
		Cause:   cause,
	}
}

// NewStorageUnavailableError creates an error for a backing file that cannot
// be opened or written
func NewStorageUnavailableError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrorKindStorageUnavailable,
		Message: message,
		Cause:   cause,
	}
}

// IsConstraintViolation checks if an error is a constraint violation
func IsConstraintViolation(err error) bool {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.IsKind(ErrorKindConstraintViolation)
	}
	return false
}

// IsStorageUnavailable checks if an error is a storage availability fault
func IsStorageUnavailable(err error) bool {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.IsKind(ErrorKindStorageUnavailable)
	}
	return false
}

// wrapQueryError classifies a driver error: constraint failures become
// ConstraintViolation errors, everything else propagates wrapped.
func wrapQueryError(message string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return NewConstraintViolationError(message, err)
	}
	return fmt.Errorf("%s: %w", message, err)
}
