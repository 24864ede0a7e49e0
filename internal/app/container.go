package app

import (
	"applyai/internal/catalog"
	"applyai/internal/clients/adzuna"
	"applyai/internal/config"
	"applyai/internal/delivery/http/handler"
	"applyai/internal/delivery/http/routes"
	"applyai/internal/domain/application"
	"applyai/internal/pkg/jwt"
	"applyai/internal/store"
	"applyai/internal/usecase"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
)

// Container wires the in-memory store, the external search client, and
// every usecase behind the HTTP surface. There is no database: all state
// lives for the lifetime of the process.
type Container struct {
	Config config.Config
	Store  *store.Store
	Routes *routes.Registry
}

func NewContainer(cfg config.Config) (*Container, error) {
	st := store.New(catalog.Build())

	provider := adzuna.NewClient(cfg.Adzuna.AppID, cfg.Adzuna.AppKey)
	provider.SetTimeout(cfg.Adzuna.Timeout)
	provider.SetRateLimit(cfg.Adzuna.MaxRequestsPerSecond)

	jwtSvc := jwt.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	sessions := gocache.New(cfg.Auth.TokenTTL, 2*cfg.Auth.TokenTTL)

	validate := validator.New()

	authUC := usecase.NewAuthUsecase(st, jwtSvc, sessions)
	jobsUC := usecase.NewJobSearchUsecase(st, provider)
	appsUC := usecase.NewApplicationsUsecase(st, application.NewSimulator())
	profileUC := usecase.NewProfilesUsecase(st)
	resumeUC := usecase.NewResumesUsecase()
	coverUC := usecase.NewCoverLettersUsecase()

	registry := routes.NewRegistry(
		handler.NewHealthHandler(st, cfg.Adzuna.Configured()),
		handler.NewAuthHandler(authUC, validate),
		handler.NewJobsHandler(jobsUC),
		handler.NewApplicationsHandler(appsUC, validate),
		handler.NewProfileHandler(profileUC, validate),
		handler.NewResumeHandler(resumeUC),
		handler.NewCoverLetterHandler(coverUC, validate),
		handler.NewPortalHandler(),
	)

	return &Container{Config: cfg, Store: st, Routes: registry}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return nil
}
