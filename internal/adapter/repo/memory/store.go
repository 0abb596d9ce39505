package memory

import (
	"sync"

	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// Store is the process-local backing for all scheduler repositories. It is
// the default when no database is configured and the seed target for tests.
type Store struct {
	mu        sync.RWMutex
	worktimes map[building.ID]building.WorkTime
	schedules map[citizen.ID]citizen.Schedule
	burntimes map[building.ID]building.BurnTime
}

func NewStore() *Store {
	return &Store{
		worktimes: make(map[building.ID]building.WorkTime),
		schedules: make(map[citizen.ID]citizen.Schedule),
		burntimes: make(map[building.ID]building.BurnTime),
	}
}

// SeedSchedule installs a schedule record directly, for tests and snapshot
// restore.
func (s *Store) SeedSchedule(id citizen.ID, sched citizen.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[id] = sched
}

// SeedWorkTime installs an operating-hours record directly.
func (s *Store) SeedWorkTime(id building.ID, wt building.WorkTime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worktimes[id] = wt
}
