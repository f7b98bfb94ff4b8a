// Package handlers implements HTTP handlers for the recenseur API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nathalie1962/recenseur-backend/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	sink store.Sink
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Sink) *HealthHandler {
	return &HealthHandler{sink: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if the listing sink is writable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.sink.Ping(c.Request().Context()); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
