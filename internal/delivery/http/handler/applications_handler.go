package handler

import (
	"applyai/internal/delivery/http/dto"
	"applyai/internal/delivery/http/middleware"
	"applyai/internal/domain/application"
	"applyai/internal/pkg/response"
	"applyai/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"
)

type ApplicationsHandler struct {
	uc       *usecase.Applications
	validate *validator.Validate
}

func NewApplicationsHandler(uc *usecase.Applications, validate *validator.Validate) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc, validate: validate}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/apply", h.Apply)
	r.Get("/applications/:user_id", h.List)
	r.Get("/stats/:user_id", h.Stats)
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created := h.uc.Apply(usecase.ApplyParams{UserID: req.UserID, JobIDs: req.JobIDs})

	data := dto.ApplyResponse{
		AppliedCount: len(created),
		Applications: applicationResponses(created),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	userID := c.Params("user_id")
	apps := h.uc.List(userID)

	data := dto.ApplicationListResponse{
		Applications: applicationResponses(apps),
		Total:        len(apps),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ApplicationsHandler) Stats(c fiber.Ctx) error {
	stats := h.uc.Stats(c.Params("user_id"))

	data := dto.StatsResponse{
		TotalApplied:     stats.TotalApplied,
		Viewed:           stats.Viewed,
		Interviews:       stats.Interviews,
		PortalsConnected: stats.PortalsConnected,
		JobsFoundToday:   stats.JobsFoundToday,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func applicationResponses(apps []application.Application) []dto.ApplicationResponse {
	return lo.Map(apps, func(a application.Application, _ int) dto.ApplicationResponse {
		return dto.NewApplicationResponse(a)
	})
}
