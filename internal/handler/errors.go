package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/errs"
)

// writeServiceError maps service-layer sentinels onto HTTP responses.
// Authorization misses map to 404: the surface must not distinguish a
// booking owned by someone else from one that does not exist.
func writeServiceError(c echo.Context, err error) error {
	var ve *errs.ValidationError
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Msg})
	case errors.Is(err, errs.ErrInvalidBookingID):
		return c.JSON(http.StatusNotFound, echo.Map{"error": errs.ErrInvalidBookingID.Error()})
	case errors.Is(err, errs.ErrStore):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
