package handler

import (
	"net/http"

	"stylekart/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	identity service.IdentityService
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(identity service.IdentityService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		identity: identity,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

type cartRequest struct {
	Email     string `json:"email"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Get handles GET /cart/{email} requests. Always responds 200 with a
// bare array; any failure has already degraded to an empty cart so the
// rendering client never needs an error path.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request, email string) {
	entries := h.identity.GetCart(r.Context(), email)
	writeJSON(w, http.StatusOK, entries)
}

// Add handles POST /cart requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req cartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	entries, err := h.identity.AddToCart(r.Context(), req.Email, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    entries,
	})
}

// Remove handles DELETE /cart/remove requests. Removing a product the
// cart does not contain succeeds and returns the current cart.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w)
		return
	}

	var req cartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	entries, err := h.identity.RemoveFromCart(r.Context(), req.Email, req.ProductID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    entries,
	})
}
