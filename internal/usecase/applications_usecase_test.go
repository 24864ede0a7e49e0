package usecase

import (
	"testing"
	"time"

	"applyai/internal/domain/application"
	"applyai/internal/domain/job"
	"applyai/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationsUsecase(st *store.Store, now time.Time, intN func(int) int) *Applications {
	sim := application.NewSimulatorWithSource(func() time.Time { return now }, intN)
	uc := NewApplicationsUsecase(st, sim)
	uc.now = func() time.Time { return now }
	return uc
}

func TestApplications_Apply_SkipsUnknownJobIDs(t *testing.T) {
	st := store.New([]job.Job{
		{ID: "jX", Title: "Backend Engineer", Company: "Ola", Portal: "Naukri", Match: 78},
		{ID: "jY", Title: "Data Analyst", Company: "Meesho", Portal: "LinkedIn", Match: 82},
	})
	uc := newApplicationsUsecase(st, time.Now(), nil)

	created := uc.Apply(ApplyParams{UserID: "u1", JobIDs: []string{"jX", "jY", "nonexistent"}})

	require.Len(t, created, 2)
	assert.Equal(t, "jX", created[0].JobID)
	assert.Equal(t, "jY", created[1].JobID)
	assert.Len(t, st.ApplicationsByUser("u1"), 2)
}

func TestApplications_Apply_SnapshotsJobFields(t *testing.T) {
	st := store.New([]job.Job{
		{ID: "j1", Title: "SRE Engineer", Company: "Swiggy", Portal: "Naukri", Salary: "₹25-38 LPA", Location: "Bangalore", Match: 77, URL: "https://example.com/j1"},
	})
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := newApplicationsUsecase(st, now, nil)

	created := uc.Apply(ApplyParams{UserID: "u1", JobIDs: []string{"j1"}})

	require.Len(t, created, 1)
	a := created[0]
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, a.JobID)
	assert.Equal(t, "SRE Engineer", a.Title)
	assert.Equal(t, "Swiggy", a.Company)
	assert.Equal(t, "₹25-38 LPA", a.Salary)
	assert.Equal(t, application.StatusApplied, a.Status)
	assert.Equal(t, now.Format(time.RFC3339), a.AppliedAt)
}

func TestApplications_List_RecomputesStatusWithoutMutatingStore(t *testing.T) {
	st := store.New([]job.Job{{ID: "j1", Title: "QA Engineer"}})
	appliedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	applyUC := newApplicationsUsecase(st, appliedAt, nil)
	applyUC.Apply(ApplyParams{UserID: "u1", JobIDs: []string{"j1"}})

	// Read well past the threshold with a draw that always progresses.
	readUC := newApplicationsUsecase(st, appliedAt.Add(time.Hour), func(int) int { return 6 })
	listed := readUC.List("u1")

	require.Len(t, listed, 1)
	assert.Equal(t, application.StatusShortlisted, listed[0].Status)

	stored := st.ApplicationsByUser("u1")
	require.Len(t, stored, 1)
	assert.Equal(t, application.StatusApplied, stored[0].Status, "ground truth must stay Applied")
}

func TestApplications_List_FreshApplicationStaysApplied(t *testing.T) {
	st := store.New([]job.Job{{ID: "j1"}})
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	uc := newApplicationsUsecase(st, now, func(int) int {
		t.Fatal("no draw expected below the threshold")
		return 0
	})
	uc.Apply(ApplyParams{UserID: "u1", JobIDs: []string{"j1"}})

	listed := uc.List("u1")
	require.Len(t, listed, 1)
	assert.Equal(t, application.StatusApplied, listed[0].Status)
}

func TestApplications_Stats_CountsDisplayedStatuses(t *testing.T) {
	st := store.New([]job.Job{{ID: "j1"}, {ID: "j2"}, {ID: "j3"}})
	appliedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	applyUC := newApplicationsUsecase(st, appliedAt, nil)
	applyUC.Apply(ApplyParams{UserID: "u1", JobIDs: []string{"j1", "j2", "j3"}})

	draws := []int{4, 5, 6} // Viewed, Interview Scheduled, Shortlisted
	readUC := newApplicationsUsecase(st, appliedAt.Add(time.Hour), func(int) int {
		d := draws[0]
		draws = draws[1:]
		return d
	})

	stats := readUC.Stats("u1")
	assert.Equal(t, 3, stats.TotalApplied)
	assert.Equal(t, 1, stats.Viewed)
	assert.Equal(t, 2, stats.Interviews)
	assert.Equal(t, 4, stats.PortalsConnected)
	assert.Equal(t, 3, stats.JobsFoundToday)
}

func TestApplications_List_UnknownUserIsEmptyNotError(t *testing.T) {
	uc := newApplicationsUsecase(store.New(nil), time.Now(), nil)
	assert.Empty(t, uc.List("nobody"))
}
