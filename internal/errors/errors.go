// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// Domain error kinds for the interest lifecycle. Services return these
// (possibly wrapped); the HTTP layer maps them to status codes in Map.
var (
	// ErrDuplicateInterest: an interest already exists for the exact
	// ordered (fromUser, toUser) pair. The reverse pair is a distinct record.
	ErrDuplicateInterest = errors.New("interest already sent")

	// ErrSelfInterest: sender and recipient are the same user.
	ErrSelfInterest = errors.New("cannot send interest to yourself")

	// ErrInvalidTransition: the interest is no longer pending, so it can
	// neither be responded to nor cancelled.
	ErrInvalidTransition = errors.New("interest has already been responded to")

	// ErrForbidden: the requester is not the party allowed to perform
	// the operation (not the recipient on respond, not the sender on cancel).
	ErrForbidden = errors.New("not authorized to act on this interest")

	// ErrNotFound: the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized: missing or invalid credentials/token.
	ErrUnauthorized = errors.New("authentication required")

	// ErrEmailTaken: registration with an email that is already in use.
	ErrEmailTaken = errors.New("email is already registered")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries a structured list of field errors for malformed
// input. It is never retried; the caller must fix the request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
