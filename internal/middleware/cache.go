package middleware

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lemonteaau/the-wild-oasis-website/internal/cache"
)

// viewPath names the cached view for a request: the route path without the
// API version prefix.  Mutations invalidate views by this same name, so the
// key written here is the key a later invalidation deletes.
func viewPath(requestPath string) string {
	return strings.TrimPrefix(requestPath, "/v1")
}

// captureWriter captures the response body while forwarding it to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// ViewCacheMiddleware serves GET responses from the view cache keyed by
// request path, and fills the cache on a miss.  Only successful JSON
// responses are stored.  Attach it solely to views whose content does not
// depend on the caller — account views must never go through here.
func ViewCacheMiddleware(vc *cache.ViewCache) echo.MiddlewareFunc {
	if !vc.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			path := viewPath(c.Request().URL.Path)

			if body, ok := vc.Get(ctx, path); ok {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK {
				vc.Set(ctx, path, cw.buf.Bytes())
			}
			return nil
		}
	}
}
