package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stylekart/internal/model"

	"github.com/rs/zerolog"
)

// errorResponse is the failure payload shared by all endpoints.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError maps a domain error to its status code and message.
// Anything else is reported as an opaque server fault; the detail
// stays in the log.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		logger.Debug().
			Str("kind", string(domainErr.Kind)).
			Str("message", domainErr.Message).
			Msg("request failed")
		writeJSON(w, domainErr.Kind.HTTPStatus(), errorResponse{Message: domainErr.Message})
		return
	}

	logger.Error().Err(err).Msg("request failed with server fault")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

// writeMethodNotAllowed reports an unsupported method.
func writeMethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
}

// decodeJSON decodes a JSON request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.KindValidation, "Invalid JSON body")
	}
	return nil
}
