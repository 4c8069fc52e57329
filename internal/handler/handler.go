package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/detailersedge/backend/internal/repository"
	"github.com/detailersedge/backend/internal/service"
)

// writeJSON serializes payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeMessage writes a {"message": ...} body with the given status.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError maps service/repository errors to HTTP responses:
// ValidationError → 400 (with the missing-field list when present),
// ErrNotFound → 404, anything else → 500 with a generic message. Store
// failures are logged, never echoed to the client.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg, internalMsg string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		if len(verr.Missing) > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": verr.Message,
				"missing": verr.Missing,
			})
			return
		}
		writeMessage(w, http.StatusBadRequest, verr.Message)
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, notFoundMsg)
		return
	}

	slog.Error(internalMsg, "error", err)
	writeMessage(w, http.StatusInternalServerError, internalMsg)
}
