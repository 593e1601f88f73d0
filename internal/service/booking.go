package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lemonteaau/the-wild-oasis-website/internal/errs"
	"github.com/lemonteaau/the-wild-oasis-website/internal/model"
	"github.com/lemonteaau/the-wild-oasis-website/internal/queue"
	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

// BookingStore is the slice of the booking repository the service needs.
type BookingStore interface {
	ListByGuest(ctx context.Context, guestID int64) ([]model.Booking, error)
	Create(ctx context.Context, b *model.Booking) error
	UpdateGuestFields(ctx context.Context, id int64, numGuests int, observations string) error
	Delete(ctx context.Context, id int64) error
}

// EventPublisher emits booking lifecycle events after successful writes.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
	PublishBookingDeleted(ctx context.Context, ev queue.BookingDeletedEvent) error
}

// BookingContext carries the stay being booked, assembled by the caller
// from the cabin page (dates, nights, price).  The owning guest is never
// part of it; ownership comes from the session alone.
type BookingContext struct {
	CabinID    int64
	CabinPrice float64
	StartDate  time.Time
	EndDate    time.Time
	NumNights  int
}

// ReservationForm carries the raw guest-editable fields as submitted.
type ReservationForm struct {
	NumGuests    string
	Observations string
}

// BookingService handles reservation mutations.
type BookingService struct {
	bookings BookingStore
	views    ViewInvalidator
	events   EventPublisher
}

func NewBookingService(bookings BookingStore, views ViewInvalidator, events EventPublisher) *BookingService {
	return &BookingService{bookings: bookings, views: views, events: events}
}

// CreateReservation inserts a new unconfirmed booking for the acting guest.
// Pricing and status fields are fixed server-side regardless of input:
// extras start at zero, the total equals the cabin price, and payment and
// breakfast are off until staff touch the booking.
func (s *BookingService) CreateReservation(ctx context.Context, p *session.Principal, bctx BookingContext, form ReservationForm) (Outcome, error) {
	if p == nil {
		return Outcome{}, errs.ErrUnauthenticated
	}

	in, err := parseReservationForm(form)
	if err != nil {
		return Outcome{}, err
	}

	b := &model.Booking{
		GuestID:      p.GuestID,
		CabinID:      bctx.CabinID,
		StartDate:    bctx.StartDate,
		EndDate:      bctx.EndDate,
		NumNights:    bctx.NumNights,
		NumGuests:    in.NumGuests,
		CabinPrice:   bctx.CabinPrice,
		ExtrasPrice:  0,
		TotalPrice:   bctx.CabinPrice,
		Status:       model.StatusUnconfirmed,
		HasBreakfast: false,
		IsPaid:       false,
		Observations: in.Observations,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return Outcome{}, errs.Storef("create booking", err)
	}

	s.views.Invalidate(ctx, CabinViewPath(bctx.CabinID))
	s.publishCreated(ctx, b)

	return Outcome{RedirectTo: "/cabins/thankyou"}, nil
}

// CabinViewPath names the cabin detail view invalidated when a booking for
// that cabin is created.  The cache middleware derives the same name from
// the request path, keeping the two sides of the cache in agreement.
func CabinViewPath(cabinID int64) string {
	return fmt.Sprintf("/cabins/%d", cabinID)
}

// UpdateReservation changes the party size and notes of a booking the
// acting guest owns.  No other booking field is reachable from here.
func (s *BookingService) UpdateReservation(ctx context.Context, p *session.Principal, bookingID int64, form ReservationForm) (Outcome, error) {
	if p == nil {
		return Outcome{}, errs.ErrUnauthenticated
	}
	if err := s.authorizeBooking(ctx, p, bookingID); err != nil {
		return Outcome{}, err
	}

	in, err := parseReservationForm(form)
	if err != nil {
		return Outcome{}, err
	}

	if err := s.bookings.UpdateGuestFields(ctx, bookingID, in.NumGuests, in.Observations); err != nil {
		return Outcome{}, errs.Storef("update booking", err)
	}

	s.views.Invalidate(ctx, fmt.Sprintf("/account/reservations/edit/%d", bookingID))
	return Outcome{RedirectTo: "/account/reservations"}, nil
}

// DeleteReservation removes a booking the acting guest owns.  The caller
// stays on the reservations list, which is invalidated on success.
func (s *BookingService) DeleteReservation(ctx context.Context, p *session.Principal, bookingID int64) (Outcome, error) {
	if p == nil {
		return Outcome{}, errs.ErrUnauthenticated
	}
	if err := s.authorizeBooking(ctx, p, bookingID); err != nil {
		return Outcome{}, err
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return Outcome{}, errs.Storef("delete booking", err)
	}

	s.views.Invalidate(ctx, "/account/reservations")
	s.publishDeleted(ctx, p.GuestID, bookingID)

	return Outcome{}, nil
}

// ListReservations returns every booking of the acting guest, feeding the
// reservations view.
func (s *BookingService) ListReservations(ctx context.Context, p *session.Principal) ([]model.Booking, error) {
	if p == nil {
		return nil, errs.ErrUnauthenticated
	}
	out, err := s.bookings.ListByGuest(ctx, p.GuestID)
	if err != nil {
		return nil, errs.Storef("list bookings", err)
	}
	return out, nil
}

// authorizeBooking decides whether the principal may act on a booking.  It
// fetches the full set of bookings owned by the principal and tests the id
// for membership, so the decision derives only from store-confirmed
// ownership and never from a filter built with client input.  A miss is
// reported identically whether the booking belongs to someone else or does
// not exist.
func (s *BookingService) authorizeBooking(ctx context.Context, p *session.Principal, bookingID int64) error {
	owned, err := s.bookings.ListByGuest(ctx, p.GuestID)
	if err != nil {
		return errs.Storef("load guest bookings", err)
	}
	for _, b := range owned {
		if b.ID == bookingID {
			return nil
		}
	}
	return errs.ErrInvalidBookingID
}

// publishCreated emits the created event.  Failures are already logged by
// the publisher; the mutation has succeeded and is not rolled back over a
// notification.
func (s *BookingService) publishCreated(ctx context.Context, b *model.Booking) {
	if s.events == nil {
		return
	}
	err := s.events.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID:  b.ID,
		GuestID:    b.GuestID,
		CabinID:    b.CabinID,
		StartDate:  b.StartDate.Format("2006-01-02"),
		EndDate:    b.EndDate.Format("2006-01-02"),
		NumGuests:  b.NumGuests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("booking service: created event for %d not published", b.ID)
	}
}

func (s *BookingService) publishDeleted(ctx context.Context, guestID, bookingID int64) {
	if s.events == nil {
		return
	}
	err := s.events.PublishBookingDeleted(ctx, queue.BookingDeletedEvent{
		BookingID: bookingID,
		GuestID:   guestID,
		DeletedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("booking service: deleted event for %d not published", bookingID)
	}
}
