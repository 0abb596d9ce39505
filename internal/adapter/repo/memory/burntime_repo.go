package memory

import (
	"citypulse/internal/domain/building"
)

type BurnTimeRepo struct {
	store *Store
}

func NewBurnTimeRepo(store *Store) BurnTimeRepo {
	return BurnTimeRepo{store: store}
}

func (r BurnTimeRepo) Get(id building.ID) (building.BurnTime, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	bt, ok := r.store.burntimes[id]
	return bt, ok
}

func (r BurnTimeRepo) Set(id building.ID, bt building.BurnTime) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.burntimes[id] = bt
}

func (r BurnTimeRepo) Remove(id building.ID) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.burntimes, id)
}
