package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/jitter/internal/tracker"
)

type HealthHandler struct {
	svc    *tracker.Service
	logger *slog.Logger
}

func NewHealthHandler(svc *tracker.Service, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{svc: svc, logger: logger}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Drink Tracker API is running"})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(); err != nil {
		h.logger.Warn("store ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
