package memory

import (
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/citizen"
)

type ScheduleRepo struct {
	store *Store
}

func NewScheduleRepo(store *Store) ScheduleRepo {
	return ScheduleRepo{store: store}
}

func (r ScheduleRepo) Get(id citizen.ID) (citizen.Schedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.schedules[id]
	if !ok {
		return citizen.Schedule{}, ports.ErrNotFound
	}
	return s, nil
}

// Update edits the record under the store lock, creating it when absent so a
// citizen's first tick needs no separate registration step.
func (r ScheduleRepo) Update(id citizen.ID, fn func(*citizen.Schedule)) error {
	if id == 0 {
		return ports.ErrBadCitizenID
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s := r.store.schedules[id]
	fn(&s)
	r.store.schedules[id] = s
	return nil
}

// All returns a copy so callers may range without holding the store lock.
func (r ScheduleRepo) All() map[citizen.ID]citizen.Schedule {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[citizen.ID]citizen.Schedule, len(r.store.schedules))
	for id, s := range r.store.schedules {
		out[id] = s
	}
	return out
}
