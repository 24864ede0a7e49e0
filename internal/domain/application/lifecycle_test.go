package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSimulator_BelowThresholdKeepsStoredStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app := Application{
		Status:    StatusApplied,
		AppliedAt: now.Add(-10 * time.Second).Format(time.RFC3339),
	}

	sim := NewSimulatorWithSource(fixedClock(now), func(int) int {
		t.Fatal("random source must not be consulted below the threshold")
		return 0
	})

	assert.Equal(t, StatusApplied, sim.DisplayedStatus(app))
}

func TestSimulator_PastThresholdDrawsFromPool(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app := Application{
		Status:    StatusApplied,
		AppliedAt: now.Add(-5 * time.Minute).Format(time.RFC3339),
	}

	draw := 0
	sim := NewSimulatorWithSource(fixedClock(now), func(n int) int {
		assert.Equal(t, len(statusPool), n)
		d := draw % n
		draw++
		return d
	})

	seen := map[string]bool{}
	for i := 0; i < len(statusPool); i++ {
		seen[sim.DisplayedStatus(app)] = true
	}

	assert.True(t, seen[StatusApplied])
	assert.True(t, seen[StatusViewed])
	assert.True(t, seen[StatusInterview])
	assert.True(t, seen[StatusShortlisted])

	// Ground truth on the record is untouched by reads.
	assert.Equal(t, StatusApplied, app.Status)
}

func TestSimulator_TwoReadsMayDiffer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app := Application{
		Status:    StatusApplied,
		AppliedAt: now.Add(-time.Hour).Format(time.RFC3339),
	}

	draws := []int{0, 4} // Applied, then Viewed by Recruiter
	sim := NewSimulatorWithSource(fixedClock(now), func(int) int {
		d := draws[0]
		draws = draws[1:]
		return d
	})

	first := sim.DisplayedStatus(app)
	second := sim.DisplayedStatus(app)

	assert.Equal(t, StatusApplied, first)
	assert.Equal(t, StatusViewed, second)
	assert.NotEqual(t, first, second)
}

func TestSimulator_MalformedTimestampKeepsStatus(t *testing.T) {
	sim := NewSimulatorWithSource(fixedClock(time.Now()), func(int) int {
		t.Fatal("random source must not be consulted for malformed timestamps")
		return 0
	})

	app := Application{Status: StatusApplied, AppliedAt: "not-a-timestamp"}
	assert.Equal(t, StatusApplied, sim.DisplayedStatus(app))
}
