// Package queue defines message payloads exchanged over the message broker
// and the background consumer for booking lifecycle events.
package queue

// BookingCreatedEvent is published when a guest successfully creates a
// reservation.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  int64   `json:"booking_id"`
	GuestID    int64   `json:"guest_id"`
	CabinID    int64   `json:"cabin_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	NumGuests  int     `json:"num_guests"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

// BookingDeletedEvent is published when a guest cancels a reservation.
type BookingDeletedEvent struct {
	BookingID int64  `json:"booking_id"`
	GuestID   int64  `json:"guest_id"`
	DeletedAt string `json:"deleted_at"`
}
