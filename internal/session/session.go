// Package session supplies the authenticated principal for each request and
// the sign-in/sign-out primitives around the external identity provider.
// The principal is distinct from the guest record it maps to: it carries
// only the identity claims baked into the session token.
package session

// CookieName is the cookie that carries the session token.
const CookieName = "wild_oasis_session"

// Principal identifies the authenticated caller of a mutation.
type Principal struct {
	GuestID  int64  // stable identifier of the guest record
	Email    string // email confirmed by the identity provider
	FullName string // display name from the identity provider
}
