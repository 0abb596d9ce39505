package citizen

import (
	"time"

	"citypulse/internal/domain/building"
)

// Schedule is the per-citizen scheduling record. One exists per simulated
// citizen for the citizen's whole lifetime.
//
// ScheduledStateTime uses the zero time.Time as the "unset" sentinel: an
// unset time means the scheduled state executes as soon as possible. Once a
// concrete time is written the state machine never executes the scheduled
// state before it elapses.
type Schedule struct {
	CurrentState       ResidentState
	ScheduledState     ResidentState
	LastScheduledState ResidentState
	ScheduledStateTime time.Time

	WorkShift          WorkShift
	WorkShiftStartHour float64
	WorkShiftEndHour   float64
	WorksOnWeekends    bool

	SchoolClass          SchoolClass
	SchoolClassStartHour float64
	SchoolClassEndHour   float64

	WorkBuilding   building.ID
	SchoolBuilding building.ID
	EventBuilding  building.ID

	// TravelTimeToWork is the smoothed home-to-work travel estimate in hours.
	TravelTimeToWork float64
	DepartureTime    time.Time

	WorkStatus       WorkStatus
	SchoolStatus     SchoolStatus
	VacationDaysLeft uint8

	FindVisitPlaceAttempts uint8
	Hint                   ScheduleHint
}

// Set records the next transition, keeping the previous scheduled state for
// diagnosis. A zero time means "execute immediately".
func (s *Schedule) Set(state ResidentState, at time.Time) {
	s.LastScheduledState = s.ScheduledState
	s.ScheduledState = state
	s.ScheduledStateTime = at
}

// Reset clears the pending transition so the next tick re-evaluates from
// scratch.
func (s *Schedule) Reset() {
	s.Set(StateUnknown, time.Time{})
}

// Due reports whether the scheduled transition should execute at now: either
// no concrete time was set, or the set time has elapsed.
func (s *Schedule) Due(now time.Time) bool {
	return s.ScheduledStateTime.IsZero() || !now.Before(s.ScheduledStateTime)
}

// UpdateTravelTime folds one observed travel sample (hours) into the
// estimate: the first sample is taken as-is, later samples average with the
// previous estimate. Each sample is clamped to maxTravelTime before use.
func (s *Schedule) UpdateTravelTime(sample, maxTravelTime float64) {
	if sample < 0 {
		sample = 0
	}
	if sample > maxTravelTime {
		sample = maxTravelTime
	}
	if s.TravelTimeToWork == 0 {
		s.TravelTimeToWork = sample
		return
	}
	s.TravelTimeToWork = (s.TravelTimeToWork + sample) / 2
}

// DepartFrom stamps the start of a journey.
func (s *Schedule) DepartFrom(now time.Time) {
	s.DepartureTime = now
}

// Arrive folds the completed journey into the travel estimate and clears the
// departure stamp. A missing departure stamp is ignored.
func (s *Schedule) Arrive(now time.Time, maxTravelTime float64) {
	if !s.DepartureTime.IsZero() {
		s.UpdateTravelTime(now.Sub(s.DepartureTime).Hours(), maxTravelTime)
	}
	s.DepartureTime = time.Time{}
}
