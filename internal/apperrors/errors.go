// Package apperrors defines the error taxonomy shared by the service layer
// and the HTTP handlers.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a service failure so the HTTP layer can pick a status code
// without parsing message strings.
type Kind int

const (
	// KindValidation marks a field-level input failure.
	KindValidation Kind = iota
	// KindNotFound marks a lookup on an id that has no record.
	KindNotFound
	// KindReference marks a foreign reference to a record that does not exist.
	KindReference
	// KindDuplicate marks a uniqueness guard failure.
	KindDuplicate
	// KindPersistence marks a store write that failed or was not acknowledged.
	KindPersistence
	// KindUnauthorized marks failed authentication.
	KindUnauthorized
	// KindRevocation marks a token revocation failure during logout.
	KindRevocation
)

// Error carries a classified, client-safe message. The wrapped cause, if any,
// is for logs only and never reaches the response body.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindNotFound, KindReference, KindDuplicate:
		return fiber.StatusUnprocessableEntity
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindRevocation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Validation creates a field-level validation error.
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound creates an error for a missing record.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Reference creates an error for a dangling foreign reference.
func Reference(message string) error {
	return &Error{Kind: KindReference, Message: message}
}

// Duplicate creates an error for a violated uniqueness guard.
func Duplicate(message string) error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// Persistence wraps a store failure behind a generic client-safe message.
func Persistence(message string, err error) error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// Unauthorized creates an authentication failure.
func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Revocation wraps a token revocation failure. The cause is deliberately kept
// out of the client message.
func Revocation(message string, err error) error {
	return &Error{Kind: KindRevocation, Message: message, Err: err}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// IsValidation checks for a validation error.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsNotFound checks for a missing-record error.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsDuplicate checks for a uniqueness guard error.
func IsDuplicate(err error) bool { return IsKind(err, KindDuplicate) }

// IsReference checks for a dangling-reference error.
func IsReference(err error) bool { return IsKind(err, KindReference) }

// IsPersistence checks for a store write error.
func IsPersistence(err error) bool { return IsKind(err, KindPersistence) }

// IsUnauthorized checks for an authentication error.
func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }
