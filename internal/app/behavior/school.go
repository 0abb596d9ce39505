package behavior

import (
	"time"

	"citypulse/config"
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
	"citypulse/internal/domain/simtime"
)

// StandardSchool is the default school strategy.
type StandardSchool struct {
	Cfg       *config.Config
	Clock     ports.TimeProvider
	Rand      ports.Randomizer
	Buildings ports.BuildingProvider
	Travel    ports.TravelEstimator
}

// BeginNewDay resets per-day scheduling state. The standard strategy keeps
// none between days.
func (b *StandardSchool) BeginNewDay() {}

// ShouldGoToSchool reports whether the citizen has classes to attend today.
func (b *StandardSchool) ShouldGoToSchool(s *citizen.Schedule, info ports.CitizenInfo) bool {
	if s.SchoolBuilding == 0 || s.SchoolStatus != citizen.SchoolStatusStudying {
		return false
	}
	if s.SchoolClass == citizen.ClassNone {
		return false
	}
	if s.CurrentState == citizen.StateAtSchool {
		return false
	}
	// Schools keep the work week regardless of the citizen.
	now := b.Clock.Now()
	if b.Cfg.Quotas.WeekendsEnabled && simtime.IsWeekend(now) {
		return false
	}
	return true
}

// ScheduleGoToSchool records the departure for the citizen's next class
// block, with the same travel padding and missed-departure collapse as the
// work strategy.
func (b *StandardSchool) ScheduleGoToSchool(s *citizen.Schedule, info ports.CitizenInfo) bool {
	if s.SchoolBuilding == 0 {
		return false
	}
	travel := b.Travel.Estimate(info.Location, s.SchoolBuilding)
	if travel > b.Cfg.Hours.MaxTravelTime {
		travel = b.Cfg.Hours.MaxTravelTime
	}
	scheduleDeparture(s, citizen.StateAtSchool, b.Clock.Now(),
		s.SchoolClassStartHour, s.SchoolClassEndHour, travel, b.Cfg.Simulation.CycleHours)
	return true
}

// UpdateSchoolClass assigns the citizen's class block from the school
// building. University students have a chance of evening classes; everyone
// else attends during the day.
func (b *StandardSchool) UpdateSchoolClass(s *citizen.Schedule, age citizen.Age) {
	if s.SchoolBuilding == 0 {
		s.SchoolClass = citizen.ClassNone
		s.SchoolClassStartHour, s.SchoolClassEndHour = 0, 0
		return
	}
	info, err := b.Buildings.Info(s.SchoolBuilding)
	if err != nil {
		s.SchoolClass = citizen.ClassNone
		return
	}
	if isUniversity(info.Category) && age >= citizen.AgeYoung &&
		b.Rand.Chance(b.Cfg.Quotas.UniversityNightClass) {
		s.SchoolClass = citizen.ClassNight
		s.SchoolClassStartHour = NightClassStartHour
		s.SchoolClassEndHour = NightClassEndHour
		return
	}
	s.SchoolClass = citizen.ClassDay
	s.SchoolClassStartHour = b.Cfg.Hours.SchoolBegin
	s.SchoolClassEndHour = b.Cfg.Hours.SchoolEnd
}

// ScheduleLunch sends day-class students on a campus out for lunch. Only
// campuses have anywhere to go; school children stay in.
func (b *StandardSchool) ScheduleLunch(id citizen.ID, s *citizen.Schedule, age citizen.Age) bool {
	if !b.Cfg.Quotas.LunchTimeEnabled {
		return false
	}
	if age < citizen.AgeYoung || s.SchoolClass != citizen.ClassDay {
		return false
	}
	info, err := b.Buildings.Info(s.SchoolBuilding)
	if err != nil || !isUniversity(info.Category) {
		return false
	}
	if !simtime.HourInWindow(b.Cfg.Hours.LunchBegin, s.SchoolClassStartHour, s.SchoolClassEndHour) {
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

// ScheduleReturnFromLunch sends the student back to class at the end of the
// lunch window.
func (b *StandardSchool) ScheduleReturnFromLunch(s *citizen.Schedule) {
	s.Set(citizen.StateAtSchool, simtime.FutureHour(b.Clock.Now(), b.Cfg.Hours.LunchEnd))
}

// ScheduleReturnFromSchool schedules the end-of-class departure. Students
// leave on time; the target state is chosen when the departure fires.
func (b *StandardSchool) ScheduleReturnFromSchool(s *citizen.Schedule) {
	s.Set(citizen.StateUnknown, simtime.FutureHour(b.Clock.Now(), s.SchoolClassEndHour))
}

func isUniversity(cat building.Category) bool {
	if cat.Service == building.ServicePlayerEducation {
		return true
	}
	return cat.Service == building.ServiceEducation && cat.Level >= building.Level3
}
