package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/middleware"
	"github.com/lemonteaau/the-wild-oasis-website/internal/service"
)

// GuestHandler exposes the profile mutation.
type GuestHandler struct {
	Guests *service.GuestService
}

func NewGuestHandler(guests *service.GuestService) *GuestHandler {
	return &GuestHandler{Guests: guests}
}

// UpdateProfile handles PATCH /v1/account/profile.  The form carries the
// raw nationalID and the combined nationality field; everything else about
// the guest record is off-limits here.
func (h *GuestHandler) UpdateProfile(c echo.Context) error {
	p := middleware.CurrentPrincipal(c)

	form := service.ProfileForm{
		NationalID:  c.FormValue("nationalID"),
		Nationality: c.FormValue("nationality"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Guests.UpdateProfile(ctx, p, form); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}
