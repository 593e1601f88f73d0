// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across service/handler layers.
var (
	// ErrUnauthenticated indicates there is no active session.  Raised
	// before any other pipeline step; no store call is attempted.
	ErrUnauthenticated = errors.New("you must be logged in")

	// ErrInvalidBookingID indicates the acting guest does not own the
	// target booking.  The same value covers "does not exist" so that the
	// error surface never reveals whether another guest holds the id.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrValidation is the match target for all input validation failures.
	// Concrete failures carry a human-readable message via ValidationError.
	ErrValidation = errors.New("invalid input")

	// ErrStore is the match target for failures reported by the backing
	// store.  Concrete failures carry the store detail via StoreError.
	ErrStore = errors.New("store error")
)

// ValidationError reports malformed or out-of-range input.  It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StoreError reports a rejected write or failed read from the backing store.
// It matches ErrStore under errors.Is and preserves the driver error for
// errors.As/Is chains.
type StoreError struct {
	Op  string // short description of the attempted operation
	Err error  // underlying store error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return e.Op + " failed: " + e.Err.Error()
}

func (e *StoreError) Unwrap() []error { return []error{ErrStore, e.Err} }

// Storef wraps a store failure with a short operation description.
func Storef(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
