package worktime

import (
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/building"
)

// Registry owns the per-building operating-hours records. Entries are
// created lazily on the first relevant query and removed explicitly when a
// building's category makes operating hours meaningless.
type Registry struct {
	Repo   ports.WorkTimeRepository
	Rand   ports.Randomizer
	Quotas building.ShiftQuotas
}

// Get returns the building's WorkTime, or the zero default if none was ever
// created. Callers treat the zero value as "unconfigured".
func (r Registry) Get(id building.ID) building.WorkTime {
	wt, _ := r.Repo.Get(id)
	return wt
}

// Exists reports whether a record was created for the building.
func (r Registry) Exists(id building.ID) bool {
	_, ok := r.Repo.Get(id)
	return ok
}

// Create derives and stores the initial WorkTime for the building. If a
// record already exists it is returned unchanged, so the weighted
// randomization runs exactly once per building.
func (r Registry) Create(id building.ID, cat building.Category) building.WorkTime {
	if wt, ok := r.Repo.Get(id); ok {
		return wt
	}
	wt := building.DeriveWorkTime(cat, r.Quotas, r.Rand)
	r.Repo.Set(id, wt)
	return wt
}

// Set overrides a building's record directly; used for administrative edits
// and forced policies.
func (r Registry) Set(id building.ID, wt building.WorkTime) {
	r.Repo.Set(id, wt)
}

// Remove drops the record.
func (r Registry) Remove(id building.ID) {
	r.Repo.Remove(id)
}
