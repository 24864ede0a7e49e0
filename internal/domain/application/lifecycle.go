package application

import (
	"math/rand/v2"
	"time"
)

const (
	StatusApplied     = "Applied"
	StatusViewed      = "Viewed by Recruiter"
	StatusInterview   = "Interview Scheduled"
	StatusShortlisted = "Shortlisted"
)

// statusPool is weighted so that most reads still show Applied.
var statusPool = []string{
	StatusApplied,
	StatusApplied,
	StatusApplied,
	StatusApplied,
	StatusViewed,
	StatusInterview,
	StatusShortlisted,
}

// progressThreshold is how long an application keeps its stored status
// before reads start drawing from the pipeline pool.
const progressThreshold = 30 * time.Second

// Simulator recomputes the displayed status of an application at read time.
// The draw is repeated on every read: two consecutive reads past the
// threshold may disagree. The stored record is never mutated.
type Simulator struct {
	now  func() time.Time
	intN func(int) int
}

func NewSimulator() *Simulator {
	return &Simulator{now: time.Now, intN: rand.IntN}
}

// NewSimulatorWithSource injects the clock and random source, for tests.
func NewSimulatorWithSource(now func() time.Time, intN func(int) int) *Simulator {
	return &Simulator{now: now, intN: intN}
}

func (s *Simulator) DisplayedStatus(a Application) string {
	appliedAt, err := time.Parse(time.RFC3339, a.AppliedAt)
	if err != nil {
		// Unparseable timestamp: keep the last known status.
		return a.Status
	}
	if s.now().Sub(appliedAt) <= progressThreshold {
		return a.Status
	}
	return statusPool[s.intN(len(statusPool))]
}
