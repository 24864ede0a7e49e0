package handler

import (
	"applyai/internal/delivery/http/dto"
	"applyai/internal/delivery/http/middleware"
	"applyai/internal/pkg/response"
	"applyai/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type CoverLetterHandler struct {
	uc       *usecase.CoverLetters
	validate *validator.Validate
}

func NewCoverLetterHandler(uc *usecase.CoverLetters, validate *validator.Validate) *CoverLetterHandler {
	return &CoverLetterHandler{uc: uc, validate: validate}
}

func (h *CoverLetterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/cover-letter", h.Generate)
}

func (h *CoverLetterHandler) Generate(c fiber.Ctx) error {
	var req dto.CoverLetterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	letter, err := h.uc.Generate(usecase.CoverLetterInput{
		JobTitle:   req.JobTitle,
		Company:    req.Company,
		Skills:     req.Skills,
		Experience: req.Experience,
		Name:       req.Name,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CoverLetterResponse{CoverLetter: letter})
}
