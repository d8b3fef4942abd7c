package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredentials covers both "unknown email" and "wrong password".
	// The two cases are deliberately indistinguishable to resist account
	// enumeration; callers must not split them back apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountSuspended is only returned after the password has been
	// verified, so it reveals nothing to a caller who does not already
	// hold the credentials.
	ErrAccountSuspended = errors.New("account suspended")

	ErrEmailExists      = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrRulingNotFound   = errors.New("ruling not found")
	ErrCorruptedHash    = errors.New("stored password hash is malformed")
)

// FieldViolation is a single validation failure on a named input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one request, so the
// caller sees all problems at once rather than one per round trip.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Violation appends a failure and returns the error for chaining.
func (e *ValidationError) Violation(field, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
	return e
}

// Empty reports whether no violation has been recorded.
func (e *ValidationError) Empty() bool { return len(e.Violations) == 0 }

// StorageError wraps an unexpected persistence failure. The cause is kept for
// server-side logs; the message shown to clients is always generic.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }
