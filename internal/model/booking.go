package model

import "time"

// Booking statuses.  Only StatusUnconfirmed is ever written by this service;
// the remaining transitions belong to the staff-facing confirmation and
// payment workflow.
const (
	StatusUnconfirmed = "unconfirmed"
	StatusConfirmed   = "confirmed"
	StatusCheckedIn   = "checked-in"
	StatusCheckedOut  = "checked-out"
)

// Booking records a guest's reservation of a cabin for a date range.  The
// owning guest is fixed at creation; after that only NumGuests and
// Observations may change through the guest-facing API.
//
// Fields:
//
//	ID           – primary key identifier.
//	GuestID      – guest who owns the booking (immutable after creation).
//	CabinID      – cabin being booked.
//	StartDate    – first night of the stay.
//	EndDate      – checkout date.
//	NumNights    – number of nights, derived from the date range.
//	NumGuests    – party size, positive.
//	CabinPrice   – cabin price for the whole stay.
//	ExtrasPrice  – price of extras; zero until staff add any.
//	TotalPrice   – total charged; fixed to CabinPrice at creation.
//	Status       – booking state (see constants above).
//	HasBreakfast – whether breakfast was added.
//	IsPaid       – whether the booking has been paid.
//	Observations – free-form guest notes, capped at 1000 characters.
//	CreatedAt    – creation timestamp.
type Booking struct {
	ID           int64     // bookings.id
	GuestID      int64     // bookings.guest_id
	CabinID      int64     // bookings.cabin_id
	StartDate    time.Time // bookings.start_date
	EndDate      time.Time // bookings.end_date
	NumNights    int       // bookings.num_nights
	NumGuests    int       // bookings.num_guests
	CabinPrice   float64   // bookings.cabin_price
	ExtrasPrice  float64   // bookings.extras_price
	TotalPrice   float64   // bookings.total_price
	Status       string    // bookings.status
	HasBreakfast bool      // bookings.has_breakfast
	IsPaid       bool      // bookings.is_paid
	Observations string    // bookings.observations
	CreatedAt    time.Time // bookings.created_at
}
