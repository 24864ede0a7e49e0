package handler

import (
	"applyai/internal/pkg/response"
	"applyai/internal/portal"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultPortalQuery    = "Software Engineer"
	defaultPortalLocation = "Bangalore"
)

type PortalHandler struct{}

func NewPortalHandler() *PortalHandler {
	return &PortalHandler{}
}

func (h *PortalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/portals/links", h.Links)
}

func (h *PortalHandler) Links(c fiber.Ctx) error {
	query := c.Query("q", defaultPortalQuery)
	location := c.Query("location", defaultPortalLocation)

	return response.Success(c, fiber.StatusOK, response.MessageOK, portal.Links(query, location))
}
