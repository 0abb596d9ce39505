package resident

import (
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/citizen"
)

// BeginNewDay runs the midnight housekeeping: strategies drop their per-day
// state and vacations tick down, returning finished vacationers to duty.
func (u UseCase) BeginNewDay() {
	u.Work.BeginNewDay()
	u.School.BeginNewDay()
	u.Spare.BeginNewDay()

	for id := range u.Schedules.All() {
		u.Schedules.Update(id, advanceVacation)
	}
}

func advanceVacation(s *citizen.Schedule) {
	if s.VacationDaysLeft == 0 {
		return
	}
	s.VacationDaysLeft--
	if s.VacationDaysLeft > 0 {
		return
	}
	if s.WorkStatus == citizen.WorkStatusOnVacation {
		s.WorkStatus = citizen.WorkStatusWorking
	}
	if s.SchoolStatus == citizen.SchoolStatusOnVacation {
		s.SchoolStatus = citizen.SchoolStatusStudying
	}
}

// StartVacation sends the citizen on leave for the given number of days.
func (u UseCase) StartVacation(id citizen.ID, days uint8) error {
	if id == 0 {
		return ports.ErrBadCitizenID
	}
	return u.Schedules.Update(id, func(s *citizen.Schedule) {
		s.VacationDaysLeft = days
		if s.WorkStatus == citizen.WorkStatusWorking {
			s.WorkStatus = citizen.WorkStatusOnVacation
		}
		if s.SchoolStatus == citizen.SchoolStatusStudying {
			s.SchoolStatus = citizen.SchoolStatusOnVacation
		}
	})
}
