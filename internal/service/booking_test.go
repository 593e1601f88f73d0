package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lemonteaau/the-wild-oasis-website/internal/errs"
	"github.com/lemonteaau/the-wild-oasis-website/internal/model"
	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

func testBookingContext() BookingContext {
	return BookingContext{
		CabinID:    42,
		CabinPrice: 1250,
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		NumNights:  5,
	}
}

func TestCreateReservation_FixedDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &fakeBookingStore{}
	views := &fakeInvalidator{}
	events := &fakePublisher{}
	s := NewBookingService(store, views, events)

	p := &session.Principal{GuestID: 7}
	out, err := s.CreateReservation(ctx, p, testBookingContext(), ReservationForm{NumGuests: "4", Observations: "late arrival"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RedirectTo != "/cabins/thankyou" {
		t.Fatalf("redirect want /cabins/thankyou, got %q", out.RedirectTo)
	}

	b := store.createIn
	if b == nil {
		t.Fatal("store create not called")
	}
	if b.GuestID != 7 {
		t.Fatalf("guest id want 7, got %d", b.GuestID)
	}
	if b.Status != model.StatusUnconfirmed {
		t.Fatalf("status want unconfirmed, got %q", b.Status)
	}
	if b.IsPaid || b.HasBreakfast {
		t.Fatalf("isPaid/hasBreakfast must start false, got %v/%v", b.IsPaid, b.HasBreakfast)
	}
	if b.ExtrasPrice != 0 {
		t.Fatalf("extras price want 0, got %v", b.ExtrasPrice)
	}
	if b.TotalPrice != 1250 {
		t.Fatalf("total price want cabin price 1250, got %v", b.TotalPrice)
	}
	if b.NumGuests != 4 || b.Observations != "late arrival" {
		t.Fatalf("guest fields not carried: %d %q", b.NumGuests, b.Observations)
	}

	if len(views.paths) != 1 || views.paths[0] != "/cabins/42" {
		t.Fatalf("want one invalidation of /cabins/42, got %v", views.paths)
	}
	if len(events.created) != 1 {
		t.Fatalf("want one created event, got %d", len(events.created))
	}
}

func TestCreateReservation_TruncatesObservations(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{}
	s := NewBookingService(store, &fakeInvalidator{}, nil)

	long := strings.Repeat("é", 1500)
	_, err := s.CreateReservation(context.Background(), &session.Principal{GuestID: 1}, testBookingContext(), ReservationForm{NumGuests: "2", Observations: long})
	if err != nil {
		t.Fatalf("truncation must not fail the operation: %v", err)
	}
	got := []rune(store.createIn.Observations)
	if len(got) != 1000 {
		t.Fatalf("observations want exactly 1000 characters, got %d", len(got))
	}
}

func TestCreateReservation_NonNumericGuests(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{}
	s := NewBookingService(store, &fakeInvalidator{}, nil)

	_, err := s.CreateReservation(context.Background(), &session.Principal{GuestID: 1}, testBookingContext(), ReservationForm{NumGuests: "two"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if store.storeCalls != 0 {
		t.Fatalf("validation failure must not reach the store, calls=%d", store.storeCalls)
	}
}

func TestCreateReservation_StoreErrorIsNotValidation(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{createErr: errors.New("duplicate entry")}
	views := &fakeInvalidator{}
	events := &fakePublisher{}
	s := NewBookingService(store, views, events)

	_, err := s.CreateReservation(context.Background(), &session.Principal{GuestID: 1}, testBookingContext(), ReservationForm{NumGuests: "2"})
	if !errors.Is(err, errs.ErrStore) {
		t.Fatalf("want store error, got %v", err)
	}
	if errors.Is(err, errs.ErrValidation) {
		t.Fatal("store failure must not surface as validation")
	}
	if !strings.Contains(err.Error(), "duplicate entry") {
		t.Fatalf("store detail missing from %q", err)
	}
	if len(views.paths) != 0 || len(events.created) != 0 {
		t.Fatal("failed insert must not invalidate or publish")
	}
}

func TestUpdateReservation_OwnershipIsNonDistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := &session.Principal{GuestID: 7}
	owned := []model.Booking{{ID: 1, GuestID: 7}, {ID: 2, GuestID: 7}}

	// id 3 exists but belongs to another guest; id 99 does not exist at all.
	var errOther, errMissing error
	for _, id := range []int64{3, 99} {
		store := &fakeBookingStore{listOut: owned}
		views := &fakeInvalidator{}
		s := NewBookingService(store, views, nil)
		_, err := s.UpdateReservation(ctx, p, id, ReservationForm{NumGuests: "2"})
		if !errors.Is(err, errs.ErrInvalidBookingID) {
			t.Fatalf("id %d: want ErrInvalidBookingID, got %v", id, err)
		}
		if store.updateCalls != 0 {
			t.Fatalf("id %d: denied update must not write", id)
		}
		if len(views.paths) != 0 {
			t.Fatalf("id %d: denied update must not invalidate", id)
		}
		if id == 3 {
			errOther = err
		} else {
			errMissing = err
		}
	}
	if errOther.Error() != errMissing.Error() {
		t.Fatalf("not-owned and not-found must be indistinguishable: %q vs %q", errOther, errMissing)
	}
}

func TestUpdateReservation_Success(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{listOut: []model.Booking{{ID: 2, GuestID: 7}}}
	views := &fakeInvalidator{}
	s := NewBookingService(store, views, nil)

	out, err := s.UpdateReservation(context.Background(), &session.Principal{GuestID: 7}, 2, ReservationForm{NumGuests: "3", Observations: "vegan breakfast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RedirectTo != "/account/reservations" {
		t.Fatalf("redirect want /account/reservations, got %q", out.RedirectTo)
	}
	if store.updateInID != 2 || store.updateInNum != 3 || store.updateInObs != "vegan breakfast" {
		t.Fatalf("update fields wrong: %d %d %q", store.updateInID, store.updateInNum, store.updateInObs)
	}
	if len(views.paths) != 1 || views.paths[0] != "/account/reservations/edit/2" {
		t.Fatalf("want edit view invalidated, got %v", views.paths)
	}
}

func TestUpdateReservation_ValidationAfterAuthorize(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{listOut: []model.Booking{{ID: 2, GuestID: 7}}}
	s := NewBookingService(store, &fakeInvalidator{}, nil)

	_, err := s.UpdateReservation(context.Background(), &session.Principal{GuestID: 7}, 2, ReservationForm{NumGuests: "0"})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if store.updateCalls != 0 {
		t.Fatal("invalid input must not be written")
	}
}

func TestDeleteReservation_InvalidatesOncePerSuccess(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{listOut: []model.Booking{{ID: 5, GuestID: 7}}}
	views := &fakeInvalidator{}
	events := &fakePublisher{}
	s := NewBookingService(store, views, events)

	if _, err := s.DeleteReservation(context.Background(), &session.Principal{GuestID: 7}, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.deleteInID != 5 {
		t.Fatalf("delete id want 5, got %d", store.deleteInID)
	}
	if len(views.paths) != 1 || views.paths[0] != "/account/reservations" {
		t.Fatalf("want exactly one invalidation of /account/reservations, got %v", views.paths)
	}
	if len(events.deleted) != 1 {
		t.Fatalf("want one deleted event, got %d", len(events.deleted))
	}
}

func TestDeleteReservation_FailedDeleteDoesNotInvalidate(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{
		listOut:   []model.Booking{{ID: 5, GuestID: 7}},
		deleteErr: errors.New("lock wait timeout"),
	}
	views := &fakeInvalidator{}
	s := NewBookingService(store, views, nil)

	_, err := s.DeleteReservation(context.Background(), &session.Principal{GuestID: 7}, 5)
	if !errors.Is(err, errs.ErrStore) {
		t.Fatalf("want store error, got %v", err)
	}
	if len(views.paths) != 0 {
		t.Fatalf("failed delete must not invalidate, got %v", views.paths)
	}
}

func TestBookingMutations_Unauthenticated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ops := map[string]func(s *BookingService) error{
		"create": func(s *BookingService) error {
			_, err := s.CreateReservation(ctx, nil, testBookingContext(), ReservationForm{NumGuests: "2"})
			return err
		},
		"update": func(s *BookingService) error {
			_, err := s.UpdateReservation(ctx, nil, 1, ReservationForm{NumGuests: "2"})
			return err
		},
		"delete": func(s *BookingService) error {
			_, err := s.DeleteReservation(ctx, nil, 1)
			return err
		},
	}
	for name, op := range ops {
		store := &fakeBookingStore{}
		views := &fakeInvalidator{}
		events := &fakePublisher{}
		s := NewBookingService(store, views, events)
		if err := op(s); !errors.Is(err, errs.ErrUnauthenticated) {
			t.Fatalf("%s: want ErrUnauthenticated, got %v", name, err)
		}
		if store.storeCalls != 0 {
			t.Fatalf("%s: unauthenticated call touched the store %d times", name, store.storeCalls)
		}
		if len(views.paths) != 0 {
			t.Fatalf("%s: unauthenticated call invalidated %v", name, views.paths)
		}
		if len(events.created)+len(events.deleted) != 0 {
			t.Fatalf("%s: unauthenticated call published events", name)
		}
	}
}

func TestDeleteReservation_StoreErrorDuringAuthorize(t *testing.T) {
	t.Parallel()
	store := &fakeBookingStore{listErr: errors.New("connection refused")}
	s := NewBookingService(store, &fakeInvalidator{}, nil)

	_, err := s.DeleteReservation(context.Background(), &session.Principal{GuestID: 7}, 5)
	if !errors.Is(err, errs.ErrStore) {
		t.Fatalf("want store error, got %v", err)
	}
	if store.deleteCalls != 0 {
		t.Fatal("delete must not run when authorization read fails")
	}
}
