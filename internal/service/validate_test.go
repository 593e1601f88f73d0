package service

import (
	"strings"
	"testing"
)

func TestParseReservationForm(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   ReservationForm
		ok   bool
		num  int
	}{
		{"plain", ReservationForm{NumGuests: "4"}, true, 4},
		{"whitespace", ReservationForm{NumGuests: " 3 "}, true, 3},
		{"zero", ReservationForm{NumGuests: "0"}, false, 0},
		{"negative", ReservationForm{NumGuests: "-2"}, false, 0},
		{"non-numeric", ReservationForm{NumGuests: "two"}, false, 0},
		{"empty", ReservationForm{NumGuests: ""}, false, 0},
		{"float", ReservationForm{NumGuests: "2.5"}, false, 0},
	}
	for _, tc := range cases {
		got, err := parseReservationForm(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			if got.NumGuests != tc.num {
				t.Fatalf("%s: numGuests want %d, got %d", tc.name, tc.num, got.NumGuests)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%s: want error", tc.name)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()
	if got := truncateRunes("short", 1000); got != "short" {
		t.Fatalf("short input must pass through, got %q", got)
	}
	exact := strings.Repeat("a", 1000)
	if got := truncateRunes(exact, 1000); got != exact {
		t.Fatalf("boundary input must pass through unchanged")
	}
	// Multi-byte text is counted in characters, not bytes.
	long := strings.Repeat("ü", 1001)
	got := truncateRunes(long, 1000)
	if n := len([]rune(got)); n != 1000 {
		t.Fatalf("want 1000 characters, got %d", n)
	}
	if !strings.HasSuffix(got, "ü") {
		t.Fatal("truncation cut a rune in half")
	}
}

func TestParseProfileForm_Messages(t *testing.T) {
	t.Parallel()
	_, err := parseProfileForm(ProfileForm{NationalID: "!!", Nationality: "French%fr"})
	if err == nil || err.Error() != "invalid national ID number" {
		t.Fatalf("want human-readable message, got %v", err)
	}
}
