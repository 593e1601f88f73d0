// Package repository implements table-scoped access to the MySQL store.
// Sentinel errors defined here let higher layers distinguish failure
// scenarios without inspecting driver errors: a missing row surfaces as a
// typed not-found error rather than sql.ErrNoRows leaking upward.
package repository

import "errors"

// ErrGuestNotFound is returned when a guest lookup matches no row.
var ErrGuestNotFound = errors.New("guest not found")

// ErrBookingNotFound is returned when a booking mutation or lookup matches
// no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrCabinNotFound is returned when a cabin lookup matches no row.
var ErrCabinNotFound = errors.New("cabin not found")
