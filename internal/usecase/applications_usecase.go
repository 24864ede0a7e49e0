package usecase

import (
	"strings"
	"time"

	"applyai/internal/domain/application"
	"applyai/internal/metrics"
	"applyai/internal/store"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ApplyParams struct {
	UserID string
	JobIDs []string
}

type UserStats struct {
	TotalApplied     int
	Viewed           int
	Interviews       int
	PortalsConnected int
	JobsFoundToday   int
}

type Applications struct {
	store *store.Store
	sim   *application.Simulator
	now   func() time.Time
}

func NewApplicationsUsecase(st *store.Store, sim *application.Simulator) *Applications {
	return &Applications{store: st, sim: sim, now: time.Now}
}

// Apply creates one record per job id found in the catalog; unknown ids are
// skipped silently, they are not an error. Each record snapshots the job's
// display fields so it survives catalog changes.
func (u *Applications) Apply(p ApplyParams) []application.Application {
	created := make([]application.Application, 0, len(p.JobIDs))
	for _, jobID := range p.JobIDs {
		j, ok := u.store.JobByID(jobID)
		if !ok {
			continue
		}
		created = append(created, application.Application{
			ID:        uuid.NewString(),
			JobID:     jobID,
			UserID:    p.UserID,
			Title:     j.Title,
			Company:   j.Company,
			Portal:    j.Portal,
			Salary:    j.Salary,
			Location:  j.Location,
			Match:     j.Match,
			URL:       j.URL,
			Status:    application.StatusApplied,
			AppliedAt: u.now().UTC().Format(time.RFC3339),
		})
	}

	u.store.AppendApplications(p.UserID, created)
	metrics.ApplicationsCounter.Add(float64(len(created)))
	return created
}

// List returns the user's applications with the displayed status recomputed
// per read. The stored ground truth stays Applied.
func (u *Applications) List(userID string) []application.Application {
	apps := u.store.ApplicationsByUser(userID)
	for i := range apps {
		apps[i].Status = u.sim.DisplayedStatus(apps[i])
	}
	return apps
}

// Stats summarizes the user's pipeline as of this read; counts follow the
// displayed statuses, so they move between reads just like the list view.
func (u *Applications) Stats(userID string) UserStats {
	apps := u.List(userID)
	return UserStats{
		TotalApplied: len(apps),
		Viewed: lo.CountBy(apps, func(a application.Application) bool {
			return strings.Contains(a.Status, "Viewed")
		}),
		Interviews: lo.CountBy(apps, func(a application.Application) bool {
			return strings.Contains(a.Status, "Interview") || strings.Contains(a.Status, "Shortlisted")
		}),
		PortalsConnected: 4,
		JobsFoundToday:   u.store.JobCount(),
	}
}
