package behavior

import (
	"time"

	"citypulse/internal/domain/citizen"
	"citypulse/internal/domain/simtime"
)

// scheduleDeparture records the transition into target so the citizen leaves
// travel-plus-one-cycle before startHour. When that departure has already
// passed but arriving before endHour is still possible, the citizen leaves
// immediately; otherwise the departure rolls over to the next occurrence of
// the shift.
func scheduleDeparture(s *citizen.Schedule, target citizen.ResidentState, now time.Time, startHour, endHour, travel, cycle float64) {
	departure := simtime.FutureHour(now, startHour-travel-cycle)
	shiftEnd := simtime.FutureHour(now, endHour)
	if !departure.Before(shiftEnd) {
		arrival := now.Add(simtime.DurationFromHours(travel + cycle))
		if arrival.Before(shiftEnd) {
			s.Set(target, time.Time{})
			return
		}
	}
	s.Set(target, departure)
}
