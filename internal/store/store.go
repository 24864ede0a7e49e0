// Package store is the process-wide in-memory state: the job catalog and
// the per-user collections. One Store is constructed at startup and handed
// into every usecase; there is no hidden global.
package store

import (
	"errors"
	"sync"

	"applyai/internal/domain/application"
	"applyai/internal/domain/job"
	"applyai/internal/domain/user"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Store guards each keyed collection with its own lock, so writers on one
// collection never block readers of another. No operation spans two
// collections atomically; applications keep a snapshot of job fields
// instead (see domain/application).
type Store struct {
	jobsMu   sync.RWMutex
	jobs     []job.Job
	jobsByID map[string]job.Job

	usersMu      sync.RWMutex
	usersByEmail map[string]user.User

	appsMu     sync.RWMutex
	appsByUser map[string][]application.Application

	profilesMu     sync.RWMutex
	profilesByUser map[string]user.Profile
}

func New(jobs []job.Job) *Store {
	byID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	return &Store{
		jobs:           jobs,
		jobsByID:       byID,
		usersByEmail:   make(map[string]user.User),
		appsByUser:     make(map[string][]application.Application),
		profilesByUser: make(map[string]user.Profile),
	}
}

// Jobs returns a copy of the catalog in its fixed build order.
func (s *Store) Jobs() []job.Job {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	out := make([]job.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Store) JobCount() int {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	return len(s.jobs)
}

func (s *Store) JobByID(id string) (job.Job, bool) {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	j, ok := s.jobsByID[id]
	return j, ok
}

func (s *Store) CreateUser(u user.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	if _, exists := s.usersByEmail[u.Email]; exists {
		return ErrEmailTaken
	}
	s.usersByEmail[u.Email] = u
	return nil
}

func (s *Store) UserByEmail(email string) (user.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	u, ok := s.usersByEmail[email]
	if !ok {
		return user.User{}, ErrNotFound
	}
	return u, nil
}

// EnsureApplicationList seeds an empty application list for a user so later
// reads distinguish "no applications yet" from an unknown user.
func (s *Store) EnsureApplicationList(userID string) {
	s.appsMu.Lock()
	defer s.appsMu.Unlock()
	if _, ok := s.appsByUser[userID]; !ok {
		s.appsByUser[userID] = []application.Application{}
	}
}

// AppendApplications adds records to the user's list, preserving insertion
// order. Records are never deleted.
func (s *Store) AppendApplications(userID string, apps []application.Application) {
	if len(apps) == 0 {
		return
	}
	s.appsMu.Lock()
	defer s.appsMu.Unlock()
	s.appsByUser[userID] = append(s.appsByUser[userID], apps...)
}

// ApplicationsByUser returns a copy of the user's records; callers may
// rewrite the displayed status on the copy without touching ground truth.
func (s *Store) ApplicationsByUser(userID string) []application.Application {
	s.appsMu.RLock()
	defer s.appsMu.RUnlock()
	stored := s.appsByUser[userID]
	out := make([]application.Application, len(stored))
	copy(out, stored)
	return out
}

func (s *Store) SaveProfile(p user.Profile) {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()
	s.profilesByUser[p.UserID] = p
}

func (s *Store) ProfileByUser(userID string) (user.Profile, error) {
	s.profilesMu.RLock()
	defer s.profilesMu.RUnlock()
	p, ok := s.profilesByUser[userID]
	if !ok {
		return user.Profile{}, ErrNotFound
	}
	return p, nil
}
