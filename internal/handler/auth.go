package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/config"
	"github.com/lemonteaau/the-wild-oasis-website/internal/repository"
	"github.com/lemonteaau/the-wild-oasis-website/internal/session"
)

// AuthHandler drives the provider sign-in/sign-out round-trip.  The service
// itself holds no credentials; it only exchanges the provider callback for
// a guest record and a signed session cookie.
type AuthHandler struct {
	Cfg    config.Config
	Flow   *session.OAuthFlow
	Guests *repository.GuestRepo
}

func NewAuthHandler(cfg config.Config, flow *session.OAuthFlow, guests *repository.GuestRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Flow: flow, Guests: guests}
}

// SignIn triggers the provider flow.  The optional redirect_to query
// parameter names the view to land on after login; it rides along in the
// OAuth state parameter.
func (h *AuthHandler) SignIn(c echo.Context) error {
	target := session.SafeRedirect(c.QueryParam("redirect_to"), "/account")
	return c.Redirect(http.StatusFound, h.Flow.AuthURL(target))
}

// Callback completes the provider flow: exchange the code, find or create
// the guest for the confirmed email, set the session cookie and send the
// guest to the view carried in state.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing code"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := h.Flow.Exchange(ctx, code)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sign-in failed"})
	}

	guest, err := h.Guests.GetByEmail(ctx, id.Email)
	if errors.Is(err, repository.ErrGuestNotFound) {
		// First visit: create the guest record before issuing a session.
		gid, cerr := h.Guests.Create(ctx, id.Email, id.Name)
		if cerr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create guest failed"})
		}
		guest.ID, guest.Email, guest.FullName = gid, id.Email, id.Name
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load guest failed"})
	}

	ttl := time.Duration(h.Cfg.SessionTTLHour) * time.Hour
	tok, err := session.NewToken(h.Cfg.JWTSecret, session.Principal{
		GuestID:  guest.ID,
		Email:    guest.Email,
		FullName: guest.FullName,
	}, ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    tok.Value,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.Env == "prod",
	})

	target := session.SafeRedirect(c.QueryParam("state"), "/account")
	return c.Redirect(http.StatusFound, target)
}

// SignOut clears the session cookie and redirects.  The optional
// redirect_to query parameter names the post-logout view.
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	target := session.SafeRedirect(c.QueryParam("redirect_to"), "/")
	return c.Redirect(http.StatusFound, target)
}
