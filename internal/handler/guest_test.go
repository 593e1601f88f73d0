package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/lemonteaau/the-wild-oasis-website/internal/service"
	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

type fakeGuestStore struct{ err error }

var _ service.GuestStore = (*fakeGuestStore)(nil)

func (f *fakeGuestStore) UpdateProfile(_ context.Context, _ int64, _, _, _ string) error {
	return f.err
}

func TestUpdateProfile_OK(t *testing.T) {
	t.Parallel()
	h := NewGuestHandler(service.NewGuestService(&fakeGuestStore{}, noopInvalidator{}))
	form := url.Values{"nationalID": {"AB12CD"}, "nationality": {"French%fr"}}
	c, rec := formContext(t, http.MethodPatch, "/v1/account/profile", form, &session.Principal{GuestID: 3}, "")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
}

func TestUpdateProfile_BadNationalID(t *testing.T) {
	t.Parallel()
	h := NewGuestHandler(service.NewGuestService(&fakeGuestStore{}, noopInvalidator{}))
	form := url.Values{"nationalID": {"AB12-CD"}, "nationality": {"French%fr"}}
	c, rec := formContext(t, http.MethodPatch, "/v1/account/profile", form, &session.Principal{GuestID: 3}, "")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestUpdateProfile_NoSession(t *testing.T) {
	t.Parallel()
	h := NewGuestHandler(service.NewGuestService(&fakeGuestStore{}, noopInvalidator{}))
	form := url.Values{"nationalID": {"AB12CD"}, "nationality": {"French%fr"}}
	c, rec := formContext(t, http.MethodPatch, "/v1/account/profile", form, nil, "")

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}
