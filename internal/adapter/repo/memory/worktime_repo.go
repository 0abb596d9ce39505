package memory

import (
	"citypulse/internal/domain/building"
)

type WorkTimeRepo struct {
	store *Store
}

func NewWorkTimeRepo(store *Store) WorkTimeRepo {
	return WorkTimeRepo{store: store}
}

func (r WorkTimeRepo) Get(id building.ID) (building.WorkTime, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	wt, ok := r.store.worktimes[id]
	return wt, ok
}

func (r WorkTimeRepo) Set(id building.ID, wt building.WorkTime) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.worktimes[id] = wt
}

func (r WorkTimeRepo) Remove(id building.ID) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.worktimes, id)
}

// All returns a copy so callers may range without holding the store lock.
func (r WorkTimeRepo) All() map[building.ID]building.WorkTime {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[building.ID]building.WorkTime, len(r.store.worktimes))
	for id, wt := range r.store.worktimes {
		out[id] = wt
	}
	return out
}
