package service

import (
	"context"

	"github.com/lemonteaau/the-wild-oasis-website/internal/model"
	"github.com/lemonteaau/the-wild-oasis-website/internal/queue"
)

// fakeBookingStore records inputs and returns canned results.  storeCalls
// counts every store round-trip, including authorization reads, so tests
// can assert that failed pipelines never touched the store.
type fakeBookingStore struct {
	storeCalls int

	listIn  int64
	listOut []model.Booking
	listErr error

	createIn  *model.Booking
	createErr error

	updateInID  int64
	updateInNum int
	updateInObs string
	updateCalls int
	updateErr   error

	deleteInID  int64
	deleteCalls int
	deleteErr   error
}

var _ BookingStore = (*fakeBookingStore)(nil)

func (f *fakeBookingStore) ListByGuest(_ context.Context, guestID int64) ([]model.Booking, error) {
	f.storeCalls++
	f.listIn = guestID
	return append([]model.Booking(nil), f.listOut...), f.listErr
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	f.storeCalls++
	cp := *b
	f.createIn = &cp
	if f.createErr == nil {
		b.ID = 101
	}
	return f.createErr
}

func (f *fakeBookingStore) UpdateGuestFields(_ context.Context, id int64, numGuests int, observations string) error {
	f.storeCalls++
	f.updateCalls++
	f.updateInID, f.updateInNum, f.updateInObs = id, numGuests, observations
	return f.updateErr
}

func (f *fakeBookingStore) Delete(_ context.Context, id int64) error {
	f.storeCalls++
	f.deleteCalls++
	f.deleteInID = id
	return f.deleteErr
}

// fakeGuestStore records the profile write.
type fakeGuestStore struct {
	calls         int
	inID          int64
	inNationality string
	inFlag        string
	inNationalID  string
	err           error
}

var _ GuestStore = (*fakeGuestStore)(nil)

func (f *fakeGuestStore) UpdateProfile(_ context.Context, id int64, nationality, countryFlag, nationalID string) error {
	f.calls++
	f.inID, f.inNationality, f.inFlag, f.inNationalID = id, nationality, countryFlag, nationalID
	return f.err
}

// fakeInvalidator records every invalidated path in order.
type fakeInvalidator struct {
	paths []string
}

var _ ViewInvalidator = (*fakeInvalidator)(nil)

func (f *fakeInvalidator) Invalidate(_ context.Context, path string) {
	f.paths = append(f.paths, path)
}

// fakePublisher counts published events.
type fakePublisher struct {
	created []queue.BookingCreatedEvent
	deleted []queue.BookingDeletedEvent
	err     error
}

var _ EventPublisher = (*fakePublisher)(nil)

func (f *fakePublisher) PublishBookingCreated(_ context.Context, ev queue.BookingCreatedEvent) error {
	f.created = append(f.created, ev)
	return f.err
}

func (f *fakePublisher) PublishBookingDeleted(_ context.Context, ev queue.BookingDeletedEvent) error {
	f.deleted = append(f.deleted, ev)
	return f.err
}
