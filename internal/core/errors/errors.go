// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Interaction errors.
var (
	// ErrNoChannelID indicates a follow-up message carried no derivable channel identifier.
	ErrNoChannelID = errors.New("no channel identifier")
)

// Post mutation errors.
var (
	// ErrNotResendable indicates a post shape the delete-and-resend fallback does not cover.
	ErrNotResendable = errors.New("post cannot be resent")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
