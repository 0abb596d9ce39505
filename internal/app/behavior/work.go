package behavior

import (
	"hash/fnv"
	"math"
	"time"

	"citypulse/config"
	"citypulse/internal/app/ports"
	"citypulse/internal/app/worktime"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
	"citypulse/internal/domain/simtime"
)

// StandardWork is the default work strategy.
type StandardWork struct {
	Cfg       *config.Config
	Clock     ports.TimeProvider
	Rand      ports.Randomizer
	WorkTimes worktime.Registry
	Buildings ports.BuildingProvider
	Travel    ports.TravelEstimator
}

// BeginNewDay resets per-day scheduling state. The standard strategy keeps
// none between days.
func (b *StandardWork) BeginNewDay() {}

// ShouldGoToWork reports whether the citizen has a work obligation to honor
// today. Timing is left to ScheduleGoToWork.
func (b *StandardWork) ShouldGoToWork(s *citizen.Schedule, info ports.CitizenInfo) bool {
	if s.WorkBuilding == 0 || s.WorkStatus != citizen.WorkStatusWorking {
		return false
	}
	if s.WorkShift == citizen.ShiftUnemployed {
		return false
	}
	if s.CurrentState == citizen.StateAtWork || s.CurrentState == citizen.StateLunch {
		return false
	}
	now := b.Clock.Now()
	if b.Cfg.Quotas.WeekendsEnabled && simtime.IsWeekend(now) && !s.WorksOnWeekends {
		return false
	}
	return true
}

// ScheduleGoToWork records the departure for the citizen's next shift. The
// smoothed travel estimate is used when leaving from home; any other origin
// gets a fresh estimate from the travel service.
func (b *StandardWork) ScheduleGoToWork(s *citizen.Schedule, info ports.CitizenInfo) bool {
	if s.WorkBuilding == 0 {
		return false
	}
	travel := s.TravelTimeToWork
	atHome := info.Home != 0 && info.Location == info.Home
	if !atHome || travel == 0 {
		travel = b.Travel.Estimate(info.Location, s.WorkBuilding)
		if travel > b.Cfg.Hours.MaxTravelTime {
			travel = b.Cfg.Hours.MaxTravelTime
		}
	}
	scheduleDeparture(s, citizen.StateAtWork, b.Clock.Now(),
		s.WorkShiftStartHour, s.WorkShiftEndHour, travel, b.Cfg.Simulation.CycleHours)
	return true
}

// UpdateWorkShift assigns (or reassigns) the citizen's shift and its hour
// window from the work building's operating policy. A building currently
// hosting a city event hires everyone into the event shift instead.
func (b *StandardWork) UpdateWorkShift(s *citizen.Schedule, age citizen.Age) {
	if s.WorkBuilding == 0 {
		s.WorkShift = citizen.ShiftUnemployed
		s.WorkShiftStartHour, s.WorkShiftEndHour = 0, 0
		s.WorksOnWeekends = false
		return
	}

	if start, end, ok := b.Buildings.EventHours(s.WorkBuilding); ok {
		s.WorkShift = citizen.ShiftEvent
		s.WorkShiftStartHour, s.WorkShiftEndHour = start, end
		s.WorksOnWeekends = true
		s.EventBuilding = s.WorkBuilding
		return
	}

	info, err := b.Buildings.Info(s.WorkBuilding)
	if err != nil {
		s.WorkShift = citizen.ShiftUnemployed
		return
	}
	wt := b.WorkTimes.Create(s.WorkBuilding, info.Category)

	var shift citizen.WorkShift
	if wt.HasContinuousWorkShift {
		if wt.WorkShifts == 2 && b.Rand.Chance(b.Cfg.Quotas.NightShift) {
			shift = citizen.ShiftContinuousNight
		} else {
			shift = citizen.ShiftContinuousDay
		}
	} else {
		shift = citizen.ShiftFirst
		if wt.WorkShifts >= 3 && b.Rand.Chance(b.Cfg.Quotas.NightShift) {
			shift = citizen.ShiftNight
		} else if wt.WorkShifts >= 2 && b.Rand.Chance(b.Cfg.Quotas.SecondShift) {
			shift = citizen.ShiftSecond
		}
	}

	s.WorkShift = shift
	s.WorksOnWeekends = wt.WorkAtWeekends
	s.WorkShiftStartHour, s.WorkShiftEndHour = b.ShiftHours(shift, wt, info.Category)
}

// ShiftHours resolves a shift to its concrete hour window for a building with
// the given operating policy.
func (b *StandardWork) ShiftHours(shift citizen.WorkShift, wt building.WorkTime, cat building.Category) (start, end float64) {
	h := b.Cfg.Hours
	switch shift {
	case citizen.ShiftFirst:
		if wt.HasExtendedWorkShift {
			if cat.IsEducation() {
				return math.Max(h.EarliestWakeUp, h.SchoolBegin-ExtendedShiftLeadHours), h.SchoolEnd
			}
			return math.Max(h.EarliestWakeUp, h.WorkBegin-ExtendedShiftLeadHours), h.WorkEnd
		}
		if cat.IsEducation() {
			return h.SchoolBegin, h.SchoolEnd
		}
		return h.WorkBegin, h.WorkEnd
	case citizen.ShiftSecond:
		if wt.WorkShifts >= 3 {
			return h.WorkEnd, 0
		}
		return h.WorkEnd, h.GoToSleep
	case citizen.ShiftNight:
		return 0, h.WorkBegin
	case citizen.ShiftContinuousDay:
		return ContinuousDayStartHour, ContinuousDayEndHour
	case citizen.ShiftContinuousNight:
		return ContinuousDayEndHour, ContinuousDayStartHour
	default:
		return 0, 0
	}
}

// ScheduleLunch sends first-shift and continuous-day workers out for lunch
// when the lunch hour is inside their shift. Whether a given citizen ever
// takes lunch is a stable per-citizen roll, so the same people go out every
// day.
func (b *StandardWork) ScheduleLunch(id citizen.ID, s *citizen.Schedule, age citizen.Age) bool {
	if !b.Cfg.Quotas.LunchTimeEnabled {
		return false
	}
	if age == citizen.AgeChild || age == citizen.AgeTeen || age == citizen.AgeSenior {
		return false
	}
	if s.WorkShift != citizen.ShiftFirst && s.WorkShift != citizen.ShiftContinuousDay {
		return false
	}
	if !simtime.HourInWindow(b.Cfg.Hours.LunchBegin, s.WorkShiftStartHour, s.WorkShiftEndHour) {
		return false
	}
	if !takesLunch(id, b.Cfg.Quotas.Lunch) {
		return false
	}
	now := b.Clock.Now()
	if simtime.HourOf(now) >= b.Cfg.Hours.LunchEnd {
		return false
	}
	lunchAt := simtime.FutureHour(now, b.Cfg.Hours.LunchBegin)
	if simtime.HourOf(now) >= b.Cfg.Hours.LunchBegin {
		// Already inside the lunch window; head out right away instead of
		// waiting for tomorrow's lunch hour.
		lunchAt = time.Time{}
	}
	s.Set(citizen.StateLunch, lunchAt)
	return true
}

// ScheduleReturnFromLunch sends the citizen back to work at the end of the
// lunch window.
func (b *StandardWork) ScheduleReturnFromLunch(s *citizen.Schedule) {
	s.Set(citizen.StateAtWork, simtime.FutureHour(b.Clock.Now(), b.Cfg.Hours.LunchEnd))
}

// ScheduleReturnFromWork schedules the end-of-shift departure. A fraction of
// workers stay late by a random slice of the configured overtime. The target
// state is left undecided; it is chosen when the departure fires.
func (b *StandardWork) ScheduleReturnFromWork(s *citizen.Schedule) {
	now := b.Clock.Now()
	departHour := s.WorkShiftEndHour
	if b.Cfg.Hours.MaxOvertime > 0 && !b.Rand.Chance(b.Cfg.Quotas.OnTime) {
		departHour += b.Cfg.Hours.MaxOvertime * float64(b.Rand.Roll(100)) / 100
	}
	departure := simtime.FutureHour(now, departHour)
	if departure.Sub(now) > simtime.DurationFromHours(12+b.Cfg.Hours.MaxOvertime) {
		// FutureHour wraps an already-passed hour to tomorrow. Shifts span
		// at most half a day and overtime is capped, so anything further out
		// means the shift end is behind us, for example after a held shift
		// handoff. Leave right away.
		s.Set(citizen.StateUnknown, time.Time{})
		return
	}
	s.Set(citizen.StateUnknown, departure)
}

// takesLunch is the stable per-citizen lunch roll against the lunch quota.
func takesLunch(id citizen.ID, quota uint32) bool {
	hash := fnv.New32a()
	hash.Write([]byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)})
	return hash.Sum32()%100 < quota
}
