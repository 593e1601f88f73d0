// Package router defines how HTTP routes are registered for the guest API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/handler"
	"github.com/lemonteaau/the-wild-oasis-website/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication and no
// other middleware.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the sign-in/sign-out round-trip.  These routes
// are unauthenticated by nature: they are how a session comes to exist.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.GET("/signin", a.SignIn)
	g.GET("/callback", a.Callback)
	g.GET("/signout", a.SignOut)
}

// RegisterPublic registers the unauthenticated cabin views behind the view
// cache middleware.  Only guest-independent views may be cached by path.
func RegisterPublic(e *echo.Echo, cb *handler.CabinHandler, viewCache echo.MiddlewareFunc) {
	g := e.Group("/v1/cabins", viewCache)
	g.GET("", cb.ListCabins)
	g.GET("/:id", cb.GetCabin)
}

// RegisterAccount registers every session-protected route: the profile and
// reservation mutations plus the reservations view.  The rate limiter runs
// after session validation so limits are counted per guest.
func RegisterAccount(e *echo.Echo, g *handler.GuestHandler, b *handler.BookingHandler, jwtSecret string, rateLimit echo.MiddlewareFunc) {
	auth := e.Group("/v1", middleware.RequireSession(jwtSecret), rateLimit)

	auth.PATCH("/account/profile", g.UpdateProfile)
	auth.GET("/account/reservations", b.ListReservations)
	auth.PATCH("/account/reservations/:id", b.UpdateReservation)
	auth.DELETE("/account/reservations/:id", b.DeleteReservation)
	auth.POST("/cabins/:id/reservations", b.CreateReservation)
}
