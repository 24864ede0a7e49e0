package handler

import (
	"strconv"

	"applyai/internal/delivery/http/dto"
	"applyai/internal/domain/job"
	"applyai/internal/pkg/response"
	"applyai/internal/search"
	"applyai/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"
)

type JobsHandler struct {
	uc *usecase.JobSearch
}

func NewJobsHandler(uc *usecase.JobSearch) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.Search)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	minMatch, _ := strconv.Atoi(c.Query("min_match", "0"))

	jobs := h.uc.Search(c.Context(), usecase.JobSearchParams{
		Query:    c.Query("q", ""),
		Skills:   c.Query("skills", ""),
		Location: c.Query("location", search.SentinelAll),
		Portal:   c.Query("portal", search.SentinelAll),
		MinMatch: minMatch,
	})

	data := dto.JobListResponse{
		Jobs:  lo.Map(jobs, func(j job.Job, _ int) dto.JobResponse { return dto.NewJobResponse(j) }),
		Total: len(jobs),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
