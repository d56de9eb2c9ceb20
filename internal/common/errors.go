// Package common defines shared sentinel errors used across the CRM core.
// Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Account / session errors.
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNoActiveSession = errors.New("no active session")

	// Table engine errors (caller contract violations).
	ErrInvalidSortField = errors.New("invalid sort field")

	// Chat errors.
	ErrContactNotFound = errors.New("contact not found")
	ErrEmptyMessage    = errors.New("empty message")
)

// ValidationError reports a malformed form field. It is locally
// recoverable: the presentation layer redisplays the form with Reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
