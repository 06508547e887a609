package handler

import (
	"net/http"

	"stylekart/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests.
type WishlistHandler struct {
	identity service.IdentityService
	logger   zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(identity service.IdentityService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		identity: identity,
		logger:   logger.With().Str("handler", "wishlist").Logger(),
	}
}

type wishlistRequest struct {
	Email     string `json:"email"`
	ProductID string `json:"productId"`
}

// Get handles GET /wishlist/{email} requests. Faults degrade to an
// empty wishlist rather than an error response.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request, email string) {
	entries := h.identity.GetWishlist(r.Context(), email)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"wishlist": entries,
	})
}

// Add handles POST /wishlist requests.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req wishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	entries, err := h.identity.AddToWishlist(r.Context(), req.Email, req.ProductID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"wishlist": entries,
	})
}

// Remove handles DELETE /wishlist/remove requests.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w)
		return
	}

	var req wishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	entries, err := h.identity.RemoveFromWishlist(r.Context(), req.Email, req.ProductID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"wishlist": entries,
	})
}
