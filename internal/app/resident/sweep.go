package resident

import (
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/building"
)

// Sweeper maintains the building-side records in the background. Each frame
// handles one slice of the building set so a large city spreads the work over
// a full sweep period.
type Sweeper struct {
	Cfg       SweeperConfig
	Clock     ports.TimeProvider
	WorkTimes ports.WorkTimeRepository
	BurnTimes ports.BurnTimeRepository
	Buildings ports.BuildingProvider
}

// SweeperConfig is the slice of the simulation config the sweep needs.
type SweeperConfig struct {
	Steps uint32
}

// Sweep runs the building maintenance slice for the given frame index:
// records of demolished buildings are dropped, expired fires are cleared.
func (sw Sweeper) Sweep(frame uint32) {
	steps := sw.Cfg.Steps
	if steps == 0 {
		steps = 1
	}
	step := frame % steps
	now := sw.Clock.Now()

	for id := range sw.WorkTimes.All() {
		if uint32(id)%steps != step {
			continue
		}
		if _, err := sw.Buildings.Info(id); err != nil {
			sw.WorkTimes.Remove(id)
			if sw.BurnTimes != nil {
				sw.BurnTimes.Remove(id)
			}
			continue
		}
		if sw.BurnTimes == nil {
			continue
		}
		if bt, ok := sw.BurnTimes.Get(id); ok && bt.Expired(now) {
			sw.BurnTimes.Remove(id)
		}
	}
}

// MarkBurning records a fire at the building so schedulers can treat it as
// out of service until the burn expires.
func (sw Sweeper) MarkBurning(id building.ID, durationHours float64) {
	if sw.BurnTimes == nil {
		return
	}
	sw.BurnTimes.Set(id, building.BurnTime{
		StartDate: sw.Clock.Now(),
		Duration:  durationHours,
	})
}

// IsBurning reports whether the building currently has an unexpired fire.
func (sw Sweeper) IsBurning(id building.ID) bool {
	if sw.BurnTimes == nil {
		return false
	}
	bt, ok := sw.BurnTimes.Get(id)
	return ok && !bt.Expired(sw.Clock.Now())
}
