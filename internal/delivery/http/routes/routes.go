package routes

import (
	"applyai/internal/delivery/http/handler"
	"applyai/internal/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	jobs         *handler.JobsHandler
	applications *handler.ApplicationsHandler
	profile      *handler.ProfileHandler
	resume       *handler.ResumeHandler
	coverLetter  *handler.CoverLetterHandler
	portals      *handler.PortalHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	jobs *handler.JobsHandler,
	applications *handler.ApplicationsHandler,
	profile *handler.ProfileHandler,
	resume *handler.ResumeHandler,
	coverLetter *handler.CoverLetterHandler,
	portals *handler.PortalHandler,
) *Registry {
	return &Registry{
		health:       health,
		auth:         auth,
		jobs:         jobs,
		applications: applications,
		profile:      profile,
		resume:       resume,
		coverLetter:  coverLetter,
		portals:      portals,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	r.auth.RegisterRoutes(api)
	r.jobs.RegisterRoutes(api)
	r.applications.RegisterRoutes(api)
	r.profile.RegisterRoutes(api)
	r.resume.RegisterRoutes(api)
	r.coverLetter.RegisterRoutes(api)
	r.portals.RegisterRoutes(api)
}
