package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or malformed input. It is raised before
// anything is persisted, so the caller can re-prompt and retry freely.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// InvalidStateError reports a moderation action against a record that has
// already left the pending state. The first decision wins; later ones get
// this error instead of a second side effect.
type InvalidStateError struct {
	Kind   string
	ID     uint
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %d already %s", e.Kind, e.ID, e.Status)
}

// SideEffectError reports a partial failure: the status transition (and any
// coin credit) committed, but a follow-up side effect such as the owner
// notification did not. The transition is never rolled back.
type SideEffectError struct {
	Op  string
	Err error
}

func (e *SideEffectError) Error() string {
	return fmt.Sprintf("%s side effect failed: %v", e.Op, e.Err)
}

func (e *SideEffectError) Unwrap() error { return e.Err }

// ErrAuth marks an expired or invalid credential. Clients clear the stored
// token and force re-authentication when they see it.
var ErrAuth = errors.New("authentication required")

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}

func IsSideEffect(err error) bool {
	var se *SideEffectError
	return errors.As(err, &se)
}
