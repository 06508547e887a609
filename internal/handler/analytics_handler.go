package handler

import (
	"net/http"

	"stylekart/internal/model"
	"stylekart/internal/service"

	"github.com/rs/zerolog"
)

// AnalyticsHandler handles analytics HTTP requests.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "analytics").Logger(),
	}
}

type analyticsResponse struct {
	Success bool `json:"success"`
	*model.AnalyticsSummary
}

// Summary handles GET /analytics requests.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		Success:          true,
		AnalyticsSummary: summary,
	})
}
