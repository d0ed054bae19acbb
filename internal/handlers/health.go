package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-entities/internal/logger"
)

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting database connectivity.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.FromContext(r.Context()).Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// RegisterHealthHandler registers the health check route.
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/healthz", h)
}
