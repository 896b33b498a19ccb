package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/jitter/internal/tracker"
	"github.com/dukerupert/jitter/internal/websocket"
)

type ConsumptionHandler struct {
	svc    *tracker.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewConsumptionHandler(svc *tracker.Service, hub *websocket.Hub, logger *slog.Logger) *ConsumptionHandler {
	return &ConsumptionHandler{svc: svc, hub: hub, logger: logger}
}

type consumptionRequest struct {
	DrinkID   int64    `json:"drink_id" validate:"required,gt=0"`
	PricePaid *float64 `json:"price_paid" validate:"omitempty,gte=0"`
}

// List returns the most recent consumptions. ?limit= may lower, but never
// raise, the configured cap.
func (h *ConsumptionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := h.svc.RecentLimit()
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	consumptions, err := h.svc.RecentConsumptions(limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list consumptions")
		return
	}
	writeJSON(w, http.StatusOK, consumptions)
}

func (h *ConsumptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req consumptionRequest
	if msg, ok := decodeRequest(r, &req); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	consumption, err := h.svc.LogConsumption(req.DrinkID, req.PricePaid)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to log consumption")
		return
	}

	h.logger.Debug("consumption logged", "id", consumption.ID, "drink", consumption.DrinkDisplayName)
	h.hub.Broadcast(websocket.NewMessage("consumption", "created", consumption.ID, map[string]any{
		"drink_id": consumption.DrinkID,
	}))

	writeJSON(w, http.StatusCreated, consumption)
}
