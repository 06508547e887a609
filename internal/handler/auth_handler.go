package handler

import (
	"net/http"

	"stylekart/internal/model"
	"stylekart/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	identity service.IdentityService
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity service.IdentityService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

type signupRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirmPassword"`
	Role            model.Role `json:"role"`
}

type loginRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// Signup handles POST /signup requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.identity.Signup(r.Context(), service.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// Login handles POST /login requests. The response reports whether
// this was the account's first successful login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, firstLogin, err := h.identity.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
		"newUser": firstLogin,
	})
}
