package handler

import (
	"net/http"

	"stylekart/internal/service"

	"github.com/rs/zerolog"
)

// ProfileHandler handles profile HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profile/{email} requests. A profile is created
// on first read if none exists yet.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request, email string) {
	profile, err := h.service.Get(r.Context(), email)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"profile": profile,
	})
}

type profileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Update handles PUT /api/profile/{email} requests.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request, email string) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	profile, err := h.service.Upsert(r.Context(), email, req.Name, req.Phone, req.Address)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"profile": profile,
	})
}
