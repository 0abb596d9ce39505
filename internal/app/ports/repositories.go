package ports

import (
	"context"
	"time"

	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// WorkTimeRepository is the process-wide operating-hours table keyed by
// building ID. Lookups for never-created keys return ok=false; callers treat
// the zero WorkTime as "unconfigured".
type WorkTimeRepository interface {
	Get(id building.ID) (building.WorkTime, bool)
	Set(id building.ID, wt building.WorkTime)
	Remove(id building.ID)
	All() map[building.ID]building.WorkTime
}

// ScheduleRepository owns the per-citizen schedule records. Update edits the
// record in place through fn, preserving the original's
// edit-without-reallocation semantics.
type ScheduleRepository interface {
	Get(id citizen.ID) (citizen.Schedule, error)
	Update(id citizen.ID, fn func(*citizen.Schedule)) error
	All() map[citizen.ID]citizen.Schedule
}

// BurnTimeRepository tracks currently-burning buildings.
type BurnTimeRepository interface {
	Get(id building.ID) (building.BurnTime, bool)
	Set(id building.ID, bt building.BurnTime)
	Remove(id building.ID)
}

// WorkTimeSnapshotStore persists the worktime registry between runs.
type WorkTimeSnapshotStore interface {
	SaveAll(ctx context.Context, entries map[building.ID]building.WorkTime) error
	LoadAll(ctx context.Context) (map[building.ID]building.WorkTime, error)
}

// ScheduleSnapshotStore persists citizen schedules as their fixed 8-byte
// records plus building assignments, relative to a reference time.
type ScheduleSnapshotStore interface {
	SaveAll(ctx context.Context, ref time.Time, entries map[citizen.ID]citizen.Schedule) error
	LoadAll(ctx context.Context, ref time.Time, resolve citizen.HoursResolver) (map[citizen.ID]citizen.Schedule, error)
}
