package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/repository"
)

// CabinHandler serves the public cabin views.  These routes sit behind the
// view cache; creating a reservation invalidates the cabin being booked.
type CabinHandler struct {
	Cabins *repository.CabinRepo
}

func NewCabinHandler(cabins *repository.CabinRepo) *CabinHandler {
	return &CabinHandler{Cabins: cabins}
}

// ListCabins handles GET /v1/cabins.
func (h *CabinHandler) ListCabins(c echo.Context) error {
	items, err := h.Cabins.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cabins failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetCabin handles GET /v1/cabins/:id.
func (h *CabinHandler) GetCabin(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cabin id"})
	}
	cb, err := h.Cabins.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCabinNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cabin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load cabin failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": cb})
}
