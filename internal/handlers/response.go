package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-entities/internal/logger"
	"github.com/sbilibin2017/gw-entities/internal/middlewares"
	"github.com/sbilibin2017/gw-entities/internal/schema"
	"github.com/sbilibin2017/gw-entities/internal/services"
)

const msgInternalError = "Internal server error"

// ErrorResponse is the error envelope of every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to status codes. Internal errors are
// logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, entity *schema.Entity, op string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, entity.Label+" not found")
	case errors.Is(err, schema.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.FromContext(r.Context()).Errorw("request failed", "entity", entity.Name, "operation", op, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// currentUser returns the authenticated user id or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return userID, ok
}
