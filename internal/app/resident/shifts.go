package resident

import (
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// maxCoworkerChecks caps the workforce scan of the handoff gate; past the cap
// the gate fails open so one oversized building cannot stall a tick.
const maxCoworkerChecks = 64

// reliefArrived implements the shift handoff gate: a worker at an essential
// service may only leave once every coworker on the succeeding shift who is
// not on vacation is on site. Buildings without a successor shift, and
// non-essential buildings, never hold anyone.
func (u UseCase) reliefArrived(id citizen.ID, s *citizen.Schedule) bool {
	if s.WorkBuilding == 0 {
		return true
	}
	info, err := u.Buildings.Info(s.WorkBuilding)
	if err != nil {
		return true
	}
	if !info.Category.IsEssentialService() {
		return true
	}
	next, ok := successorShift(s.WorkShift, u.WorkTimes.Get(s.WorkBuilding))
	if !ok {
		return true
	}
	if u.Workforce == nil {
		return true
	}
	workers, err := u.Workforce.WorkersOf(s.WorkBuilding)
	if err != nil {
		return true
	}
	checked := 0
	for _, w := range workers {
		if w.Citizen == id {
			continue
		}
		if checked++; checked > maxCoworkerChecks {
			return true
		}
		if w.Shift != next || w.OnVacation {
			continue
		}
		if !w.AtWork {
			return false
		}
	}
	return true
}

// successorShift returns the shift that takes over from the given one under
// the building's operating policy.
func successorShift(shift citizen.WorkShift, wt building.WorkTime) (citizen.WorkShift, bool) {
	switch shift {
	case citizen.ShiftFirst:
		if wt.WorkShifts >= 2 && !wt.HasContinuousWorkShift {
			return citizen.ShiftSecond, true
		}
		return citizen.ShiftUnemployed, false
	case citizen.ShiftSecond:
		if wt.WorkShifts >= 3 {
			return citizen.ShiftNight, true
		}
		return citizen.ShiftUnemployed, false
	case citizen.ShiftNight:
		return citizen.ShiftFirst, true
	case citizen.ShiftContinuousDay:
		if wt.WorkShifts == 2 {
			return citizen.ShiftContinuousNight, true
		}
		return citizen.ShiftUnemployed, false
	case citizen.ShiftContinuousNight:
		return citizen.ShiftContinuousDay, true
	default:
		return citizen.ShiftUnemployed, false
	}
}
