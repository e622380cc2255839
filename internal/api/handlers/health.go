package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/searchit/internal/backend"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	rl *backend.RateLimiter
}

// NewHealthHandler creates a new HealthHandler. rl may be nil when the
// backend is not rate limited.
func NewHealthHandler(rl *backend.RateLimiter) *HealthHandler {
	return &HealthHandler{rl: rl}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 503 once the daily backend quota is spent, since every
// search would then fail. Otherwise it returns 200.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if h.rl != nil && h.rl.Remaining() == 0 {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "quota_exhausted"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
