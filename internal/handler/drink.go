package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/jitter/internal/tracker"
	"github.com/dukerupert/jitter/internal/websocket"
)

type DrinkHandler struct {
	svc    *tracker.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewDrinkHandler(svc *tracker.Service, hub *websocket.Hub, logger *slog.Logger) *DrinkHandler {
	return &DrinkHandler{svc: svc, hub: hub, logger: logger}
}

type drinkRequest struct {
	BrandID          int64    `json:"brand_id" validate:"required,gt=0"`
	Flavour          string   `json:"flavour" validate:"required"`
	SizeMl           int      `json:"size_ml" validate:"gt=0"`
	CaffeinePer100ml *float64 `json:"caffeine_per_100ml" validate:"required,gte=0"`
}

func (h *DrinkHandler) List(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.svc.ListDrinks()
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list drinks")
		return
	}
	writeJSON(w, http.StatusOK, drinks)
}

func (h *DrinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	drink, err := h.svc.GetDrink(id)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get drink")
		return
	}
	writeJSON(w, http.StatusOK, drink)
}

func (h *DrinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req drinkRequest
	if msg, ok := decodeRequest(r, &req); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	drink, err := h.svc.CreateDrink(tracker.NewDrink{
		BrandID:          req.BrandID,
		Flavour:          req.Flavour,
		SizeMl:           req.SizeMl,
		CaffeinePer100ml: *req.CaffeinePer100ml,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create drink")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("drink", "created", drink.ID, nil))

	writeJSON(w, http.StatusCreated, drink)
}
