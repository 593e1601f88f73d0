// Package service sequences the guest-facing mutations: session check,
// ownership check, input validation, a single store write, then view
// invalidation.  Any failing step short-circuits the rest.
package service

import (
	"context"

	"github.com/lemonteaau/the-wild-oasis-website/internal/errs"
	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

// GuestStore is the slice of the guest repository the service needs.
type GuestStore interface {
	UpdateProfile(ctx context.Context, id int64, nationality, countryFlag, nationalID string) error
}

// ViewInvalidator marks a named view stale after a successful write.
// Implementations are best-effort; the service never checks an error.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, path string)
}

// ProfileForm carries the raw profile fields as submitted.
type ProfileForm struct {
	NationalID  string
	Nationality string // combined "<name>%<flag>" value
}

// GuestService handles guest profile mutations.
type GuestService struct {
	guests GuestStore
	views  ViewInvalidator
}

func NewGuestService(guests GuestStore, views ViewInvalidator) *GuestService {
	return &GuestService{guests: guests, views: views}
}

// UpdateProfile writes the check-in profile fields of the acting guest.
// The target row is always the principal's own record; no id is accepted
// from the caller.
func (s *GuestService) UpdateProfile(ctx context.Context, p *session.Principal, form ProfileForm) (Outcome, error) {
	if p == nil {
		return Outcome{}, errs.ErrUnauthenticated
	}

	upd, err := parseProfileForm(form)
	if err != nil {
		return Outcome{}, err
	}

	if err := s.guests.UpdateProfile(ctx, p.GuestID, upd.Nationality, upd.CountryFlag, upd.NationalID); err != nil {
		return Outcome{}, errs.Storef("update guest", err)
	}

	s.views.Invalidate(ctx, "/account/profile")
	return Outcome{}, nil
}
