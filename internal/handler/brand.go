package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/jitter/internal/tracker"
	"github.com/dukerupert/jitter/internal/websocket"
)

type BrandHandler struct {
	svc    *tracker.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewBrandHandler(svc *tracker.Service, hub *websocket.Hub, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{svc: svc, hub: hub, logger: logger}
}

type brandRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.ListBrands()
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list brands")
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	brand, err := h.svc.GetBrand(id)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get brand")
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if msg, ok := decodeRequest(r, &req); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	brand, err := h.svc.CreateBrand(req.Name)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create brand")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("brand", "created", brand.ID, nil))

	writeJSON(w, http.StatusCreated, brand)
}
