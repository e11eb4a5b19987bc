// Package shared contains the error taxonomy used by every degree-of-freedom
// package. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base errors that can be used for error checking with errors.Is().
var (
	// Validation errors
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidModulus = errors.New("invalid modulus")
	ErrInvalidSpin    = errors.New("invalid spin")
	ErrInvalidCharge  = errors.New("invalid charge")

	// Operand errors
	ErrIncompatibleGroup = errors.New("incompatible group")
	ErrIncompatibleSpin  = errors.New("incompatible spin")
	ErrKindMismatch      = errors.New("kind mismatch")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "cyclic", "spin", "dof"
	Op      string // Operation that failed, e.g., "New", "Add"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Errorf creates a domain error with a formatted message.
func Errorf(domain, op string, kind error, format string, args ...any) *DomainError {
	return NewDomainError(domain, op, kind, fmt.Sprintf(format, args...))
}

// IsValidation checks if the error was caused by a rejected constructor input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidModulus) ||
		errors.Is(err, ErrInvalidSpin) ||
		errors.Is(err, ErrInvalidCharge)
}

// IsIncompatible checks if the error was caused by operands of a binary
// operation coming from different structures.
func IsIncompatible(err error) bool {
	return errors.Is(err, ErrIncompatibleGroup) ||
		errors.Is(err, ErrIncompatibleSpin) ||
		errors.Is(err, ErrKindMismatch)
}
