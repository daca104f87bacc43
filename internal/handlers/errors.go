package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"webeat/internal/service"
	"webeat/internal/validation"
)

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// respondWithError writes a JSON error response. err, when non-nil, is
// logged with logMsg (or userMsg if logMsg is empty) but never leaked to
// the client.
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		slog.Error(logMsg, "error", err)
	}

	respondJSON(w, status, map[string]string{"error": userMsg})
}

// respondServiceError maps a service error onto the API error taxonomy.
// Validation and domain errors carry their own message; anything else
// becomes a non-leaking 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
	case errors.Is(err, service.ErrCodeRequired):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	case errors.Is(err, service.ErrInviteNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	// Already-accepted maps to 400, not 409
	case errors.Is(err, service.ErrInviteAlreadyAccepted),
		errors.Is(err, service.ErrSelfAccept),
		errors.Is(err, service.ErrEmailTaken):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "unexpected service error", err)
	}
}
