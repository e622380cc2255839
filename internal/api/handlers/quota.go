package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/searchit/internal/backend"
)

// QuotaHandler reports the backend call budget.
type QuotaHandler struct {
	rl *backend.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(rl *backend.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		Limited    bool      `json:"limited"            doc:"Whether a daily cap is configured"`
		DailyLimit int64     `json:"daily_limit"        doc:"Configured daily backend call limit"         example:"5000"`
		DailyUsed  int64     `json:"daily_used"         doc:"Backend calls made in the current window"    example:"142"`
		Remaining  int64     `json:"remaining"          doc:"Calls left in the window, -1 when uncapped"  example:"4858"`
		ResetAt    time.Time `json:"reset_at,omitzero"  doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current backend quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	resp.Body.Remaining = -1
	if h.rl == nil {
		return resp, nil
	}

	resp.Body.Limited = h.rl.MaxDaily() > 0
	resp.Body.DailyLimit = max(h.rl.MaxDaily(), 0)
	resp.Body.DailyUsed = h.rl.DailyCount()
	resp.Body.Remaining = h.rl.Remaining()
	resp.Body.ResetAt = h.rl.ResetAt()

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get backend quota status",
		Description: "Returns the daily backend call usage, the remaining budget and when the window resets.",
		Tags:        []string{"backend"},
	}, h.GetQuota)
}
