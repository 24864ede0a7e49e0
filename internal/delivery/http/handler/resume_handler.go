package handler

import (
	"applyai/internal/delivery/http/dto"
	"applyai/internal/delivery/http/middleware"
	"applyai/internal/pkg/response"
	"applyai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc *usecase.Resumes
}

func NewResumeHandler(uc *usecase.Resumes) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/resume/parse", h.Parse)
}

func (h *ResumeHandler) Parse(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file upload", nil, err)
	}

	data := h.uc.Parse(file.Filename, file.Size)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeDataResponse(data))
}
