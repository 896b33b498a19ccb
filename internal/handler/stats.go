package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/jitter/internal/tracker"
)

type StatsHandler struct {
	svc    *tracker.Service
	logger *slog.Logger
}

func NewStatsHandler(svc *tracker.Service, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, logger: logger}
}

func (h *StatsHandler) AllTime(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AllTimeStats()
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) StackedChart(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.StackedChart()
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to build chart")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
