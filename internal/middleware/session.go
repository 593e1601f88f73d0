package middleware // reusable HTTP middleware for the guest API

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

// principalKey is the echo context key under which the authenticated
// principal is stored.
const principalKey = "principal"

// RequireSession returns middleware that validates the session token from
// the session cookie or a Bearer header and injects the principal into the
// request context.  Requests without a valid session are rejected with 401
// before reaching the handler, so handlers on protected routes can assume
// a principal is present.
func RequireSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := rawToken(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "you must be logged in"})
			}
			p, err := session.ParseToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "you must be logged in"})
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// rawToken extracts the session token from the cookie or, as a fallback
// for non-browser clients, from the Authorization header.
func rawToken(c echo.Context) string {
	if ck, err := c.Cookie(session.CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// CurrentPrincipal returns the principal placed in the context by
// RequireSession, or nil when the request is unauthenticated.
func CurrentPrincipal(c echo.Context) *session.Principal {
	if p, ok := c.Get(principalKey).(*session.Principal); ok {
		return p
	}
	return nil
}
