package resident

import (
	"context"
	"errors"
	"time"

	"citypulse/config"
	"citypulse/internal/app/behavior"
	"citypulse/internal/app/ports"
	"citypulse/internal/app/worktime"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
	"citypulse/internal/domain/simtime"
)

// maxVisitPlaceAttempts bounds how often a citizen retries finding a place to
// visit before giving up and heading home.
const maxVisitPlaceAttempts = 3

// UseCase drives the per-citizen tick: forced relocations first, then the
// pending transition if its time has come, then a fresh decision when nothing
// is pending.
type UseCase struct {
	Cfg       *config.Config
	Clock     ports.TimeProvider
	Rand      ports.Randomizer
	Schedules ports.ScheduleRepository
	Citizens  ports.CitizenProvider
	Buildings ports.BuildingProvider
	Workforce ports.WorkforceProvider
	Movement  ports.MovementService
	Finder    ports.VisitPlaceFinder
	WorkTimes worktime.Registry
	Work      behavior.WorkBehavior
	School    behavior.SchoolBehavior
	Spare     behavior.SpareTimeBehavior
	Metrics   ports.TickMetrics
	Events    ports.EventSink
}

// ProcessTick advances one citizen by one simulation cycle.
func (u UseCase) ProcessTick(ctx context.Context, id citizen.ID) error {
	if id == 0 {
		return ports.ErrBadCitizenID
	}
	info, err := u.Citizens.Info(id)
	if err != nil {
		return err
	}

	sched, err := u.Schedules.Get(id)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	u.syncAssignments(&sched, info)

	now := u.Clock.Now()

	if reason, forced := forcedRedirect(info); forced {
		if err := u.Movement.Redirect(ctx, id, reason); err != nil {
			return err
		}
		u.recordRedirect()
		sched.Reset()
		return u.put(id, sched)
	}

	if sched.CurrentState == citizen.StateIgnored {
		return u.put(id, sched)
	}
	if info.Moving || sched.CurrentState == citizen.StateInTransition {
		return u.put(id, sched)
	}
	if !sched.Due(now) {
		return u.put(id, sched)
	}

	if sched.ScheduledState != citizen.StateUnknown {
		u.executeTransition(ctx, id, &sched, info, now)
		return u.put(id, sched)
	}

	u.decideNextState(id, &sched, info, now)
	return u.put(id, sched)
}

// syncAssignments reconciles the schedule with the host's employment and
// enrollment state, deriving a fresh shift or class block on any change.
func (u UseCase) syncAssignments(s *citizen.Schedule, info ports.CitizenInfo) {
	if s.WorkBuilding != info.Work {
		s.WorkBuilding = info.Work
		s.WorkShift = citizen.ShiftUnemployed
	}
	if s.SchoolBuilding != info.School {
		s.SchoolBuilding = info.School
		s.SchoolClass = citizen.ClassNone
	}

	if s.WorkBuilding == 0 {
		s.WorkShift = citizen.ShiftUnemployed
		if s.WorkStatus == citizen.WorkStatusWorking {
			s.WorkStatus = citizen.WorkStatusNone
		}
	} else if s.WorkShift == citizen.ShiftUnemployed {
		u.Work.UpdateWorkShift(s, info.Age)
		if s.WorkStatus == citizen.WorkStatusNone {
			s.WorkStatus = citizen.WorkStatusWorking
		}
	}

	if s.SchoolBuilding == 0 {
		s.SchoolClass = citizen.ClassNone
		if s.SchoolStatus == citizen.SchoolStatusStudying {
			s.SchoolStatus = citizen.SchoolStatusNone
		}
	} else if s.SchoolClass == citizen.ClassNone {
		u.School.UpdateSchoolClass(s, info.Age)
		if s.SchoolStatus == citizen.SchoolStatusNone && s.SchoolClass != citizen.ClassNone {
			s.SchoolStatus = citizen.SchoolStatusStudying
		}
	}
}

// RegisterCitizenArrival completes a journey: the pending state becomes
// current and, for commutes to work, the observed travel time is folded into
// the estimate.
func (u UseCase) RegisterCitizenArrival(ctx context.Context, id citizen.ID) error {
	if id == 0 {
		return ports.ErrBadCitizenID
	}
	now := u.Clock.Now()
	return u.Schedules.Update(id, func(s *citizen.Schedule) {
		from := s.CurrentState
		arrived := s.ScheduledState
		if arrived == citizen.StateUnknown {
			s.DepartureTime = time.Time{}
			return
		}
		if arrived == citizen.StateAtWork {
			s.Arrive(now, u.Cfg.Hours.MaxTravelTime)
		} else {
			s.DepartureTime = time.Time{}
		}
		s.CurrentState = arrived
		s.Reset()
		u.recordTransition(ctx, id, from, arrived, now)
	})
}

// RegisterCitizenDeparture marks a host-initiated journey so the tick leaves
// the citizen alone until arrival.
func (u UseCase) RegisterCitizenDeparture(ctx context.Context, id citizen.ID) error {
	if id == 0 {
		return ports.ErrBadCitizenID
	}
	now := u.Clock.Now()
	return u.Schedules.Update(id, func(s *citizen.Schedule) {
		s.DepartFrom(now)
		s.CurrentState = citizen.StateInTransition
	})
}

// executeTransition carries out the pending scheduled state. A failed move is
// not retried directly; the schedule resets and the next tick decides anew.
func (u UseCase) executeTransition(ctx context.Context, id citizen.ID, s *citizen.Schedule, info ports.CitizenInfo, now time.Time) {
	target, ok := u.transitionTarget(id, s, info)
	if !ok {
		s.FindVisitPlaceAttempts++
		if s.FindVisitPlaceAttempts >= maxVisitPlaceAttempts {
			s.FindVisitPlaceAttempts = 0
			s.Hint = citizen.HintNone
			u.scheduleGoHome(s, info)
			return
		}
		s.Reset()
		return
	}
	s.FindVisitPlaceAttempts = 0

	if target == info.Location {
		// Already there; the state flips without a journey.
		from := s.CurrentState
		s.CurrentState = s.ScheduledState
		s.Reset()
		u.recordTransition(ctx, id, from, s.CurrentState, now)
		return
	}

	if err := u.Movement.MoveTo(ctx, id, target); err != nil {
		u.recordMoveFailure()
		s.Reset()
		return
	}
	s.DepartFrom(now)
}

// transitionTarget resolves the building the pending state takes place in.
func (u UseCase) transitionTarget(id citizen.ID, s *citizen.Schedule, info ports.CitizenInfo) (building.ID, bool) {
	switch s.ScheduledState {
	case citizen.StateAtWork:
		if s.WorkShift == citizen.ShiftEvent && s.EventBuilding != 0 {
			return s.EventBuilding, true
		}
		return s.WorkBuilding, s.WorkBuilding != 0
	case citizen.StateAtSchool:
		return s.SchoolBuilding, s.SchoolBuilding != 0
	case citizen.StateAtHome:
		return info.Home, info.Home != 0
	case citizen.StateLunch:
		near := s.WorkBuilding
		if s.CurrentState == citizen.StateAtSchool {
			near = s.SchoolBuilding
		}
		return u.findPlace(id, near, citizen.HintLocalSearch)
	case citizen.StateShopping, citizen.StateRelaxing, citizen.StateVisiting:
		return u.findPlace(id, info.Location, s.Hint)
	default:
		return info.Home, info.Home != 0
	}
}

func (u UseCase) findPlace(id citizen.ID, near building.ID, hint citizen.ScheduleHint) (building.ID, bool) {
	if u.Finder == nil {
		return 0, false
	}
	return u.Finder.FindVisitPlace(id, near, hint)
}

// decideNextState picks what the citizen does next when nothing is pending.
func (u UseCase) decideNextState(id citizen.ID, s *citizen.Schedule, info ports.CitizenInfo, now time.Time) {
	switch s.CurrentState {
	case citizen.StateAtWork:
		u.decideAtWork(id, s, info, now)
	case citizen.StateAtSchool:
		u.decideAtSchool(id, s, info, now)
	case citizen.StateLunch:
		if s.SchoolBuilding != 0 && s.WorkBuilding == 0 {
			u.School.ScheduleReturnFromLunch(s)
		} else {
			u.Work.ScheduleReturnFromLunch(s)
		}
	case citizen.StateEvacuation, citizen.StateInShelter:
		// Host-driven; nothing to decide until released.
	default:
		u.decideFreeTime(id, s, info, now)
	}
}

func (u UseCase) decideAtWork(id citizen.ID, s *citizen.Schedule, info ports.CitizenInfo, now time.Time) {
	h := simtime.HourOf(now)
	if simtime.HourInWindow(h, s.WorkShiftStartHour, s.WorkShiftEndHour) {
		if u.Work.ScheduleLunch(id, s, info.Age) {
			return
		}
		u.Work.ScheduleReturnFromWork(s)
		return
	}

	// Departure padding delivers workers up to a cycle plus travel before
	// the shift opens; hold them on site until it does.
	if until := simtime.NormalizeHour(s.WorkShiftStartHour - h); until <= u.Cfg.Simulation.CycleHours+u.Cfg.Hours.MaxTravelTime {
		s.Set(citizen.StateUnknown, simtime.FutureHour(now, s.WorkShiftStartHour))
		return
	}

	// Shift over. Essential services hold the departing worker until the
	// relief shift has someone on site.
	if !u.reliefArrived(id, s) {
		s.Set(citizen.StateUnknown, now.Add(simtime.DurationFromHours(u.Cfg.Simulation.CycleHours)))
		return
	}
	u.decideFreeTime(id, s, info, now)
}

func (u UseCase) decideAtSchool(id citizen.ID, s *citizen.Schedule, info ports.CitizenInfo, now time.Time) {
	h := simtime.HourOf(now)
	if simtime.HourInWindow(h, s.SchoolClassStartHour, s.SchoolClassEndHour) {
		if u.School.ScheduleLunch(id, s, info.Age) {
			return
		}
		u.School.ScheduleReturnFromSchool(s)
		return
	}

	// Same early-arrival padding as workers; keep students at the school
	// until class opens.
	if until := simtime.NormalizeHour(s.SchoolClassStartHour - h); until <= u.Cfg.Simulation.CycleHours+u.Cfg.Hours.MaxTravelTime {
		s.Set(citizen.StateUnknown, simtime.FutureHour(now, s.SchoolClassStartHour))
		return
	}

	u.decideFreeTime(id, s, info, now)
}

/// decideFreeTime handles citizens without a pending obligation: the next
// shift or class first, then spare-time rolls, then home.
func (u UseCase) decideFreeTime(id citizen.ID, s *citizen.Schedule, info ports.CitizenInfo, now time.Time) {
	if u.Work.ShouldGoToWork(s, info) {
		if u.Work.ScheduleGoToWork(s, info) {
			return
		}
	}
	if u.School.ShouldGoToSchool(s, info) {
		if u.School.ScheduleGoToSchool(s, info) {
			return
		}
	}

	if u.isSleepTime(s, now) {
		if info.Home != 0 && info.Location != info.Home {
			u.scheduleGoHome(s, info)
			return
		}
		s.Set(citizen.StateUnknown, simtime.FutureHour(now, u.Cfg.Hours.WakeUp))
		return
	}

	if u.Rand.Chance(u.Spare.ShoppingChance(info.Age)) {
		s.Hint = citizen.HintNone
		s.Set(citizen.StateShopping, time.Time{})
		return
	}
	if u.Rand.Chance(u.Spare.RelaxingChance(info.Age, s.WorkShift)) {
		s.Hint = citizen.HintRelaxNearby
		s.Set(citizen.StateRelaxing, time.Time{})
		return
	}
	if u.Rand.Chance(u.Spare.BusinessChance(info.Age)) {
		s.Hint = citizen.HintLocalSearch
		s.Set(citizen.StateVisiting, time.Time{})
		return
	}

	if info.Home != 0 && info.Location != info.Home {
		u.scheduleGoHome(s, info)
		return
	}
	// At home with nothing to do; look again in a little while.
	s.Set(citizen.StateUnknown, now.Add(simtime.DurationFromHours(1)))
}

func (u UseCase) scheduleGoHome(s *citizen.Schedule, info ports.CitizenInfo) {
	if info.Home == 0 {
		s.Set(citizen.StateUnknown, u.Clock.Now().Add(simtime.DurationFromHours(1)))
		return
	}
	s.Set(citizen.StateAtHome, time.Time{})
}

// isSleepTime reports whether the citizen should be in bed: night hours, and
// no night work to keep them up.
func (u UseCase) isSleepTime(s *citizen.Schedule, now time.Time) bool {
	h := simtime.HourOf(now)
	if !simtime.IsNightHour(h, u.Cfg.Hours.GoToSleep, u.Cfg.Hours.WakeUp) {
		return false
	}
	switch s.WorkShift {
	case citizen.ShiftNight, citizen.ShiftSecond, citizen.ShiftContinuousNight, citizen.ShiftEvent:
		return false
	}
	return s.SchoolClass != citizen.ClassNight
}

func forcedRedirect(info ports.CitizenInfo) (ports.RedirectReason, bool) {
	switch {
	case info.Dead:
		return ports.RedirectRelease, true
	case info.Arrested:
		return ports.RedirectJail, true
	case info.Sick:
		return ports.RedirectHospital, true
	}
	return 0, false
}

func (u UseCase) put(id citizen.ID, sched citizen.Schedule) error {
	return u.Schedules.Update(id, func(s *citizen.Schedule) { *s = sched })
}

func (u UseCase) recordTransition(ctx context.Context, id citizen.ID, from, to citizen.ResidentState, at time.Time) {
	if u.Metrics != nil {
		u.Metrics.RecordTransition(to)
	}
	if u.Events != nil {
		u.Events.PublishTransition(ctx, id, from, to, at)
	}
}

func (u UseCase) recordMoveFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordMoveFailure()
	}
}

func (u UseCase) recordRedirect() {
	if u.Metrics != nil {
		u.Metrics.RecordRedirect()
	}
}
