package invitations

import "errors"

var (
	ErrNotFound         = errors.New("Invitation not found")
	ErrInvalidType      = errors.New("Invitation type mismatch")
	ErrAlreadyResponded = errors.New("Invitation already responded to")
	ErrExpired          = errors.New("Invitation has expired")
)

// ValidationError marks bad input so handlers can map it to 400 instead of 500.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(err error) error { return &ValidationError{Err: err} }
