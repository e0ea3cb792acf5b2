// Package apperr defines the recoverable error taxonomy shared by the
// service layer and the HTTP handlers. Every operation either fails with
// one of these types or with a plain wrapped error treated as internal.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError rejects a submission before any record is created
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for a single field
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransitionError rejects a state change not reachable from the
// current state. Allowed lists the legally reachable next states so the
// caller can correct the request.
type InvalidTransitionError struct {
	Entity  string
	ID      string
	From    string
	To      string
	Allowed []string
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s %s: cannot transition from terminal state %q to %q",
			e.Entity, e.ID, e.From, e.To)
	}
	return fmt.Sprintf("%s %s: cannot transition from %q to %q (allowed: %s)",
		e.Entity, e.ID, e.From, e.To, strings.Join(e.Allowed, ", "))
}

// NotFoundError signals that an operation targeted a nonexistent id
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// TransportError wraps store or network unavailability during an operation
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Transport wraps err as a TransportError for the named operation
func Transport(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsTransport reports whether err is a TransportError
func IsTransport(err error) bool {
	var tr *TransportError
	return errors.As(err, &tr)
}
