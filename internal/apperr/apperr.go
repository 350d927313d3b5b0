// Package apperr defines the application error taxonomy. Every service
// operation fails with exactly one kind; the HTTP boundary maps the
// kind to a status code and returns the user-facing message as-is.
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

// Error carries a kind and a user-facing message. Details, when set,
// is additional context safe to return to the caller (validation
// specifics); the wrapped cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WithDetails(kind Kind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// Wrap attaches a cause that is logged but never shown to the caller.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err. Errors outside the taxonomy are
// treated as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// UserMessage returns the message safe to show to the caller, or ""
// for errors outside the taxonomy.
func UserMessage(err error) (message, details string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, e.Details
	}
	return "", ""
}
