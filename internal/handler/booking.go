package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/middleware"
	"github.com/lemonteaau/the-wild-oasis-website/internal/service"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the reservation mutations and the guest's
// reservations view.
type BookingHandler struct {
	Bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// CreateReservation handles POST /v1/cabins/:id/reservations.  The form
// carries the stay context from the cabin page (dates, nights, price) plus
// the guest-editable fields.  On success the guest is sent to the
// thank-you view via 303.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
	p := middleware.CurrentPrincipal(c)

	cabinID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || cabinID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cabin id"})
	}
	start, err := time.Parse(dateLayout, c.FormValue("startDate"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := time.Parse(dateLayout, c.FormValue("endDate"))
	if err != nil || !end.After(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}
	nights, err := strconv.Atoi(c.FormValue("numNights"))
	if err != nil || nights <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid number of nights"})
	}
	price, err := strconv.ParseFloat(c.FormValue("cabinPrice"), 64)
	if err != nil || price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cabin price"})
	}

	bctx := service.BookingContext{
		CabinID:    cabinID,
		CabinPrice: price,
		StartDate:  start,
		EndDate:    end,
		NumNights:  nights,
	}
	form := service.ReservationForm{
		NumGuests:    c.FormValue("numGuests"),
		Observations: c.FormValue("observations"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Bookings.CreateReservation(ctx, p, bctx, form)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, out.RedirectTo)
}

// UpdateReservation handles PATCH /v1/account/reservations/:id.  Only the
// party size and observations are read from the form; any other submitted
// field is ignored.  On success the guest is sent back to the reservations
// list via 303.
func (h *BookingHandler) UpdateReservation(c echo.Context) error {
	p := middleware.CurrentPrincipal(c)

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	form := service.ReservationForm{
		NumGuests:    c.FormValue("numGuests"),
		Observations: c.FormValue("observations"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Bookings.UpdateReservation(ctx, p, bookingID, form)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, out.RedirectTo)
}

// DeleteReservation handles DELETE /v1/account/reservations/:id.  The
// caller remains on the reservations list, so a plain 204 is returned.
func (h *BookingHandler) DeleteReservation(c echo.Context) error {
	p := middleware.CurrentPrincipal(c)

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Bookings.DeleteReservation(ctx, p, bookingID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListReservations handles GET /v1/account/reservations.
func (h *BookingHandler) ListReservations(c echo.Context) error {
	p := middleware.CurrentPrincipal(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Bookings.ListReservations(ctx, p)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
