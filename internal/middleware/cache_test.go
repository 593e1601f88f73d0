package middleware

import (
	"testing"

	"github.com/lemonteaau/the-wild-oasis-website/internal/service"
)

// A cached cabin view must be stored under the exact name the booking
// mutation invalidates, or invalidation silently misses and the view stays
// stale until TTL.
func TestViewPathMatchesCabinInvalidation(t *testing.T) {
	t.Parallel()
	got := viewPath("/v1/cabins/42")
	want := service.CabinViewPath(42)
	if got != want {
		t.Fatalf("cached view path %q never matches invalidated path %q", got, want)
	}
}

func TestViewPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"/v1/cabins", "/cabins"},
		{"/v1/cabins/7", "/cabins/7"},
		{"/healthz", "/healthz"}, // unversioned routes pass through unchanged
	}
	for _, tc := range cases {
		if got := viewPath(tc.in); got != tc.want {
			t.Fatalf("viewPath(%q) want %q, got %q", tc.in, tc.want, got)
		}
	}
}
