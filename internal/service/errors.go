package service

import "errors"

// ErrNotFound is returned when an expense does not exist or is not owned
// by the caller. Callers cannot tell the two cases apart.
var ErrNotFound = errors.New("expense not found")

// ErrUnauthorized is returned when a caller identity cannot be resolved.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError reports malformed or missing caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
