package session

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	tok, err := NewToken("secret", Principal{GuestID: 12, Email: "g@example.com", FullName: "G Uest"}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok.Value == "" || !tok.Exp.After(time.Now()) {
		t.Fatalf("bad token: %+v", tok)
	}

	p, err := ParseToken("secret", tok.Value)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.GuestID != 12 || p.Email != "g@example.com" || p.FullName != "G Uest" {
		t.Fatalf("claims lost: %+v", p)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()
	tok, err := NewToken("secret", Principal{GuestID: 1}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken("other", tok.Value); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()
	tok, err := NewToken("secret", Principal{GuestID: 1}, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken("secret", tok.Value); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseToken("secret", raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%q: want ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestSafeRedirect(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"/account", "/account"},
		{"/account/reservations", "/account/reservations"},
		{"", "/def"},
		{"https://evil.example", "/def"},
		{"//evil.example", "/def"},
	}
	for _, tc := range cases {
		if got := SafeRedirect(tc.in, "/def"); got != tc.want {
			t.Fatalf("SafeRedirect(%q) want %q, got %q", tc.in, tc.want, got)
		}
	}
}
