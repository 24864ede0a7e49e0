package handler

import (
	"applyai/internal/pkg/response"
	"applyai/internal/store"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	store      *store.Store
	liveSearch bool
}

func NewHealthHandler(st *store.Store, liveSearch bool) *HealthHandler {
	return &HealthHandler{store: st, liveSearch: liveSearch}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status":      "ok",
		"jobs_loaded": h.store.JobCount(),
		"live_search": h.liveSearch,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
