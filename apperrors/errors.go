package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. Every kind has exactly one HTTP
// status mapping in utils/response.go.
type Kind int

const (
	// Auth failures from the identity provider
	KindMalformedToken Kind = iota
	KindExpiredToken
	KindRevokedToken
	KindServiceUnavailable

	// Auth gate failures
	KindUnregisteredIdentity
	KindForbidden

	// Validation failures
	KindMissingField
	KindInvalidReference
	KindSelfReference

	KindInvalidTransition
	KindNotFound
	KindConflict
	KindInternalFault
)

// Error is the application error carried from services up to the envelope.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an application error with a caller-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause. The cause is logged, never sent to the caller.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Internal wraps a storage or collaborator fault without leaking detail.
func Internal(err error) *Error {
	return &Error{Kind: KindInternalFault, Message: "internal server error", Err: err}
}

// KindOf extracts the kind from err, defaulting to KindInternalFault for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternalFault
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
