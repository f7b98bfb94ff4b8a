// Package middleware provides Echo middleware for the recenseur API.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Nathalie1962/recenseur-backend/internal/metrics"
)

const bearerScheme = "Bearer "

// authSkipPaths are operational endpoints exempt from the bearer check:
// probes, metric scrapes, and API documentation carry no caller data and
// no side effects.
var authSkipPaths = map[string]struct{}{
	"/healthz":      {},
	"/readyz":       {},
	"/metrics":      {},
	"/docs":         {},
	"/openapi.json": {},
	"/openapi.yaml": {},
}

// authSkipPrefixes extends authSkipPaths to whole route subtrees.
var authSkipPrefixes = []string{"/swagger", "/schemas/"}

func authExempt(path string) bool {
	if _, ok := authSkipPaths[path]; ok {
		return true
	}
	for _, p := range authSkipPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// BearerAuth returns Echo middleware enforcing a static bearer token.
// The Authorization header must equal "Bearer <token>" exactly; anything
// else is rejected with 401 before any handler logic runs, so a rejected
// request can have no side effects. Comparison is constant-time.
func BearerAuth(token string) echo.MiddlewareFunc {
	want := []byte(token)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authExempt(c.Request().URL.Path) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			got, ok := strings.CutPrefix(header, bearerScheme)
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				metrics.AuthFailuresTotal.Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "unauthorized",
				})
			}

			return next(c)
		}
	}
}
