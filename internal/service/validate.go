package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lemonteaau/the-wild-oasis-website/internal/errs"
)

// maxObservations caps the free-text notes on a booking.  Longer input is
// truncated, never rejected.
const maxObservations = 1000

// nationalitySep joins the nationality name and the flag identifier in the
// combined form field, e.g. "French%fr".
const nationalitySep = "%"

var nationalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`)

// profileUpdate is the typed result of validating a profile form.
type profileUpdate struct {
	Nationality string
	CountryFlag string
	NationalID  string
}

// parseProfileForm validates the raw profile fields.  The nationality field
// carries two values joined by "%"; the split happens on the first
// occurrence so nationality names containing the separator still yield a
// flag.  A missing separator is malformed input, not an empty flag.
func parseProfileForm(f ProfileForm) (profileUpdate, error) {
	if !nationalIDPattern.MatchString(f.NationalID) {
		return profileUpdate{}, errs.Validationf("invalid national ID number")
	}
	nationality, flag, ok := strings.Cut(f.Nationality, nationalitySep)
	if !ok || nationality == "" {
		return profileUpdate{}, errs.Validationf("invalid nationality selection")
	}
	return profileUpdate{
		Nationality: nationality,
		CountryFlag: flag,
		NationalID:  f.NationalID,
	}, nil
}

// reservationInput is the typed result of validating a reservation form.
// Only the two guest-editable fields exist here; everything else on a
// booking is off-limits to form input.
type reservationInput struct {
	NumGuests    int
	Observations string
}

// parseReservationForm coerces and normalizes the guest-editable fields.
func parseReservationForm(f ReservationForm) (reservationInput, error) {
	n, err := strconv.Atoi(strings.TrimSpace(f.NumGuests))
	if err != nil || n <= 0 {
		return reservationInput{}, errs.Validationf("invalid number of guests")
	}
	return reservationInput{
		NumGuests:    n,
		Observations: truncateRunes(f.Observations, maxObservations),
	}, nil
}

// truncateRunes limits s to max characters, not bytes, so multi-byte notes
// are not cut mid-rune.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
