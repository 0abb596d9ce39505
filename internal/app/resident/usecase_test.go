package resident

import (
	"context"
	"errors"
	"testing"
	"time"

	"citypulse/config"
	"citypulse/internal/app/behavior"
	"citypulse/internal/app/ports"
	"citypulse/internal/app/worktime"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

type frozenClock struct{ at time.Time }

func (c frozenClock) Now() time.Time { return c.at }

type wtRepo struct {
	m map[building.ID]building.WorkTime
}

func newWTRepo() *wtRepo { return &wtRepo{m: map[building.ID]building.WorkTime{}} }

func (r *wtRepo) Get(id building.ID) (building.WorkTime, bool) {
	wt, ok := r.m[id]
	return wt, ok
}
func (r *wtRepo) Set(id building.ID, wt building.WorkTime) { r.m[id] = wt }
func (r *wtRepo) Remove(id building.ID)                    { delete(r.m, id) }
func (r *wtRepo) All() map[building.ID]building.WorkTime   { return r.m }

type burnRepo struct {
	m map[building.ID]building.BurnTime
}

func newBurnRepo() *burnRepo { return &burnRepo{m: map[building.ID]building.BurnTime{}} }

func (r *burnRepo) Get(id building.ID) (building.BurnTime, bool) {
	bt, ok := r.m[id]
	return bt, ok
}
func (r *burnRepo) Set(id building.ID, bt building.BurnTime) { r.m[id] = bt }
func (r *burnRepo) Remove(id building.ID)                    { delete(r.m, id) }

type schedRepo struct {
	m map[citizen.ID]citizen.Schedule
}

func newSchedRepo() *schedRepo { return &schedRepo{m: map[citizen.ID]citizen.Schedule{}} }

func (r *schedRepo) Get(id citizen.ID) (citizen.Schedule, error) {
	s, ok := r.m[id]
	if !ok {
		return citizen.Schedule{}, ports.ErrNotFound
	}
	return s, nil
}

func (r *schedRepo) Update(id citizen.ID, fn func(*citizen.Schedule)) error {
	s := r.m[id]
	fn(&s)
	r.m[id] = s
	return nil
}

func (r *schedRepo) All() map[citizen.ID]citizen.Schedule { return r.m }

type stubBuildings struct {
	infos map[building.ID]ports.BuildingInfo
}

func (s stubBuildings) Info(id building.ID) (ports.BuildingInfo, error) {
	info, ok := s.infos[id]
	if !ok {
		return ports.BuildingInfo{}, ports.ErrNotFound
	}
	return info, nil
}

func (s stubBuildings) EventHours(building.ID) (float64, float64, bool) { return 0, 0, false }

type stubCitizens struct {
	infos map[citizen.ID]ports.CitizenInfo
}

func (s stubCitizens) Info(id citizen.ID) (ports.CitizenInfo, error) {
	info, ok := s.infos[id]
	if !ok {
		return ports.CitizenInfo{}, ports.ErrNotFound
	}
	return info, nil
}

type stubWorkforce struct {
	workers map[building.ID][]ports.WorkerInfo
}

func (s stubWorkforce) WorkersOf(id building.ID) ([]ports.WorkerInfo, error) {
	return s.workers[id], nil
}

type moveRecorder struct {
	moves     []building.ID
	redirects []ports.RedirectReason
	fail      bool
}

func (m *moveRecorder) MoveTo(ctx context.Context, id citizen.ID, target building.ID) error {
	if m.fail {
		return errors.New("no path to target")
	}
	m.moves = append(m.moves, target)
	return nil
}

func (m *moveRecorder) Redirect(ctx context.Context, id citizen.ID, reason ports.RedirectReason) error {
	m.redirects = append(m.redirects, reason)
	return nil
}

type stubFinder struct {
	place building.ID
}

func (f stubFinder) FindVisitPlace(citizen.ID, building.ID, citizen.ScheduleHint) (building.ID, bool) {
	return f.place, f.place != 0
}

type metricsRecorder struct {
	transitions []citizen.ResidentState
	moveFails   int
	redirects   int
}

func (m *metricsRecorder) RecordTransition(state citizen.ResidentState) {
	m.transitions = append(m.transitions, state)
}
func (m *metricsRecorder) RecordMoveFailure() { m.moveFails++ }
func (m *metricsRecorder) RecordRedirect()    { m.redirects++ }

type publishedEvent struct {
	id       citizen.ID
	from, to citizen.ResidentState
}

type eventRecorder struct {
	events []publishedEvent
}

func (e *eventRecorder) PublishTransition(ctx context.Context, id citizen.ID, from, to citizen.ResidentState, at time.Time) error {
	e.events = append(e.events, publishedEvent{id: id, from: from, to: to})
	return nil
}

type scriptRand struct {
	chances []bool
	rolls   []uint32
}

func (r *scriptRand) Chance(percent uint32) bool {
	if len(r.chances) == 0 {
		return false
	}
	v := r.chances[0]
	r.chances = r.chances[1:]
	return v
}

func (r *scriptRand) Roll(max uint32) uint32 {
	if len(r.rolls) == 0 {
		return 0
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v
}

type fixedTravel float64

func (f fixedTravel) Estimate(from, to building.ID) float64 { return float64(f) }

type fixture struct {
	uc      UseCase
	cfg     *config.Config
	sched   *schedRepo
	wt      *wtRepo
	moves   *moveRecorder
	metrics *metricsRecorder
	events  *eventRecorder
	cits    *stubCitizens
	force   *stubWorkforce
}

func newFixture(at time.Time, rng ports.Randomizer, infos map[building.ID]ports.BuildingInfo) *fixture {
	cfg := config.Default()
	clk := frozenClock{at: at}
	wt := newWTRepo()
	reg := worktime.Registry{Repo: wt, Rand: rng}
	buildings := stubBuildings{infos: infos}
	sched := newSchedRepo()
	moves := &moveRecorder{}
	metrics := &metricsRecorder{}
	events := &eventRecorder{}
	cits := &stubCitizens{infos: map[citizen.ID]ports.CitizenInfo{}}
	force := &stubWorkforce{workers: map[building.ID][]ports.WorkerInfo{}}

	f := &fixture{
		cfg: cfg, sched: sched, wt: wt, moves: moves,
		metrics: metrics, events: events, cits: cits, force: force,
	}
	f.uc = UseCase{
		Cfg:       cfg,
		Clock:     clk,
		Rand:      rng,
		Schedules: sched,
		Citizens:  cits,
		Buildings: buildings,
		Workforce: force,
		Movement:  moves,
		Finder:    stubFinder{place: 12},
		WorkTimes: reg,
		Work: &behavior.StandardWork{
			Cfg: cfg, Clock: clk, Rand: rng, WorkTimes: reg,
			Buildings: buildings, Travel: fixedTravel(0.5),
		},
		School: &behavior.StandardSchool{
			Cfg: cfg, Clock: clk, Rand: rng,
			Buildings: buildings, Travel: fixedTravel(0.5),
		},
		Spare:   behavior.StandardSpareTime{},
		Metrics: metrics,
		Events:  events,
	}
	return f
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
}

var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

var electricityPlant = map[building.ID]ports.BuildingInfo{
	9: {Category: building.Category{Service: building.ServiceElectricity}, Active: true},
}

func TestProcessTickRejectsZeroID(t *testing.T) {
	f := newFixture(at(tuesday, 8, 0), &scriptRand{}, nil)
	if err := f.uc.ProcessTick(context.Background(), 0); !errors.Is(err, ports.ErrBadCitizenID) {
		t.Fatalf("err = %v, want ErrBadCitizenID", err)
	}
}

func TestProcessTickRedirectsTheDead(t *testing.T) {
	f := newFixture(at(tuesday, 8, 0), &scriptRand{}, nil)
	f.cits.infos[1] = ports.CitizenInfo{Dead: true}
	f.sched.m[1] = citizen.Schedule{ScheduledState: citizen.StateAtWork}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(f.moves.redirects) != 1 || f.moves.redirects[0] != ports.RedirectRelease {
		t.Fatalf("redirects = %v, want one release", f.moves.redirects)
	}
	if f.metrics.redirects != 1 {
		t.Fatalf("redirect metric = %d, want 1", f.metrics.redirects)
	}
	if s := f.sched.m[1]; s.ScheduledState != citizen.StateUnknown {
		t.Fatalf("schedule not reset: %v", s.ScheduledState)
	}
}

func TestProcessTickExecutesDueTransition(t *testing.T) {
	f := newFixture(at(tuesday, 7, 30), &scriptRand{}, electricityPlant)
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 3, Work: 9}
	f.sched.m[1] = citizen.Schedule{
		CurrentState:       citizen.StateAtHome,
		ScheduledState:     citizen.StateAtWork,
		ScheduledStateTime: at(tuesday, 7, 30),
		WorkShift:          citizen.ShiftFirst,
		WorkBuilding:       9,
		WorkStatus:         citizen.WorkStatusWorking,
	}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(f.moves.moves) != 1 || f.moves.moves[0] != 9 {
		t.Fatalf("moves = %v, want [9]", f.moves.moves)
	}
	if s := f.sched.m[1]; s.DepartureTime.IsZero() {
		t.Fatalf("departure not stamped")
	}
}

func TestProcessTickWaitsForScheduledTime(t *testing.T) {
	f := newFixture(at(tuesday, 7, 0), &scriptRand{}, electricityPlant)
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 3, Work: 9}
	f.sched.m[1] = citizen.Schedule{
		CurrentState:       citizen.StateAtHome,
		ScheduledState:     citizen.StateAtWork,
		ScheduledStateTime: at(tuesday, 7, 30),
		WorkShift:          citizen.ShiftFirst,
		WorkBuilding:       9,
		WorkStatus:         citizen.WorkStatusWorking,
	}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(f.moves.moves) != 0 {
		t.Fatalf("moved ahead of schedule: %v", f.moves.moves)
	}
}

func TestProcessTickMoveFailureResets(t *testing.T) {
	f := newFixture(at(tuesday, 7, 30), &scriptRand{}, electricityPlant)
	f.moves.fail = true
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 3, Work: 9}
	f.sched.m[1] = citizen.Schedule{
		CurrentState:       citizen.StateAtHome,
		ScheduledState:     citizen.StateAtWork,
		ScheduledStateTime: at(tuesday, 7, 30),
		WorkShift:          citizen.ShiftFirst,
		WorkBuilding:       9,
		WorkStatus:         citizen.WorkStatusWorking,
	}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	s := f.sched.m[1]
	if s.ScheduledState != citizen.StateUnknown {
		t.Fatalf("scheduled state = %v, want unknown after failed move", s.ScheduledState)
	}
	if !s.DepartureTime.IsZero() {
		t.Fatalf("departure stamped despite failed move")
	}
	if f.metrics.moveFails != 1 {
		t.Fatalf("move failure metric = %d, want 1", f.metrics.moveFails)
	}
}

func TestRegisterCitizenArrival(t *testing.T) {
	f := newFixture(at(tuesday, 8, 30), &scriptRand{}, electricityPlant)
	f.sched.m[1] = citizen.Schedule{
		CurrentState:   citizen.StateAtHome,
		ScheduledState: citizen.StateAtWork,
		WorkBuilding:   9,
		DepartureTime:  at(tuesday, 8, 0),
	}

	if err := f.uc.RegisterCitizenArrival(context.Background(), 1); err != nil {
		t.Fatalf("arrival: %v", err)
	}
	s := f.sched.m[1]
	if s.CurrentState != citizen.StateAtWork {
		t.Fatalf("current state = %v, want at_work", s.CurrentState)
	}
	if s.TravelTimeToWork != 0.5 {
		t.Fatalf("travel estimate = %v, want 0.5", s.TravelTimeToWork)
	}
	if s.ScheduledState != citizen.StateUnknown || !s.DepartureTime.IsZero() {
		t.Fatalf("arrival should clear the pending transition")
	}
	if len(f.metrics.transitions) != 1 || f.metrics.transitions[0] != citizen.StateAtWork {
		t.Fatalf("transitions = %v, want [at_work]", f.metrics.transitions)
	}
	if len(f.events.events) != 1 || f.events.events[0].to != citizen.StateAtWork {
		t.Fatalf("events = %v, want one at_work arrival", f.events.events)
	}
}

func TestShiftHandoffHoldsEssentialWorker(t *testing.T) {
	run := func(reliefAtWork bool) citizen.Schedule {
		f := newFixture(at(tuesday, 1, 0), &scriptRand{}, electricityPlant)
		f.wt.Set(9, building.WorkTime{WorkAtNight: true, WorkAtWeekends: true, WorkShifts: 3})
		f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 9, Work: 9}
		f.force.workers[9] = []ports.WorkerInfo{
			{Citizen: 1, Shift: citizen.ShiftSecond, AtWork: true},
			{Citizen: 2, Shift: citizen.ShiftNight, AtWork: reliefAtWork},
		}
		f.sched.m[1] = citizen.Schedule{
			CurrentState:       citizen.StateAtWork,
			WorkShift:          citizen.ShiftSecond,
			WorkShiftStartHour: 18,
			WorkShiftEndHour:   0,
			WorkBuilding:       9,
			WorkStatus:         citizen.WorkStatusWorking,
		}
		if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
			t.Fatalf("tick: %v", err)
		}
		return f.sched.m[1]
	}

	held := run(false)
	if held.ScheduledState != citizen.StateUnknown {
		t.Fatalf("worker left with no relief on site: %v", held.ScheduledState)
	}
	if !held.ScheduledStateTime.Equal(at(tuesday, 1, 15)) {
		t.Fatalf("recheck time = %v, want one cycle later", held.ScheduledStateTime)
	}

	released := run(true)
	if released.ScheduledState != citizen.StateAtHome {
		t.Fatalf("relieved worker should head home, got %v", released.ScheduledState)
	}
}

func TestShiftHandoffWaitsForAllRelievers(t *testing.T) {
	run := func(second ports.WorkerInfo) citizen.Schedule {
		f := newFixture(at(tuesday, 1, 0), &scriptRand{}, electricityPlant)
		f.wt.Set(9, building.WorkTime{WorkAtNight: true, WorkAtWeekends: true, WorkShifts: 3})
		f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 9, Work: 9}
		f.force.workers[9] = []ports.WorkerInfo{
			{Citizen: 1, Shift: citizen.ShiftSecond, AtWork: true},
			{Citizen: 2, Shift: citizen.ShiftNight, AtWork: true},
			second,
		}
		f.sched.m[1] = citizen.Schedule{
			CurrentState:       citizen.StateAtWork,
			WorkShift:          citizen.ShiftSecond,
			WorkShiftStartHour: 18,
			WorkShiftEndHour:   0,
			WorkBuilding:       9,
			WorkStatus:         citizen.WorkStatusWorking,
		}
		if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
			t.Fatalf("tick: %v", err)
		}
		return f.sched.m[1]
	}

	// One reliever on site, one still missing: the whole next shift has to
	// be in before the worker may go.
	held := run(ports.WorkerInfo{Citizen: 3, Shift: citizen.ShiftNight})
	if held.ScheduledState != citizen.StateUnknown || !held.ScheduledStateTime.Equal(at(tuesday, 1, 15)) {
		t.Fatalf("worker released with a reliever missing: %v at %v", held.ScheduledState, held.ScheduledStateTime)
	}

	// The missing reliever is on vacation and does not count.
	released := run(ports.WorkerInfo{Citizen: 3, Shift: citizen.ShiftNight, OnVacation: true})
	if released.ScheduledState != citizen.StateAtHome {
		t.Fatalf("vacationing reliever held the worker: %v", released.ScheduledState)
	}

	// Everybody arrived.
	released = run(ports.WorkerInfo{Citizen: 3, Shift: citizen.ShiftNight, AtWork: true})
	if released.ScheduledState != citizen.StateAtHome {
		t.Fatalf("fully relieved worker should head home, got %v", released.ScheduledState)
	}
}

func TestEarlyArrivalWaitsForShiftStart(t *testing.T) {
	f := newFixture(at(tuesday, 8, 50), &scriptRand{}, electricityPlant)
	f.wt.Set(9, building.WorkTime{WorkAtNight: true, WorkAtWeekends: true, WorkShifts: 3})
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 9, Work: 9}
	f.sched.m[1] = citizen.Schedule{
		CurrentState:       citizen.StateAtWork,
		WorkShift:          citizen.ShiftFirst,
		WorkShiftStartHour: 9,
		WorkShiftEndHour:   18,
		WorkBuilding:       9,
		WorkStatus:         citizen.WorkStatusWorking,
	}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	s := f.sched.m[1]
	if s.CurrentState != citizen.StateAtWork {
		t.Fatalf("state = %v, early arrival should stay at work", s.CurrentState)
	}
	if s.ScheduledState != citizen.StateUnknown || !s.ScheduledStateTime.Equal(at(tuesday, 9, 0)) {
		t.Fatalf("early arrival decided %v at %v, want a wait until shift start", s.ScheduledState, s.ScheduledStateTime)
	}
}

func TestEarlyArrivalWaitsForClassStart(t *testing.T) {
	f := newFixture(at(tuesday, 7, 50), &scriptRand{}, nil)
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeYoung, Home: 3, Location: 5, School: 5}
	f.sched.m[1] = citizen.Schedule{
		CurrentState:         citizen.StateAtSchool,
		SchoolBuilding:       5,
		SchoolStatus:         citizen.SchoolStatusStudying,
		SchoolClass:          citizen.ClassDay,
		SchoolClassStartHour: 8,
		SchoolClassEndHour:   14,
	}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	s := f.sched.m[1]
	if s.CurrentState != citizen.StateAtSchool {
		t.Fatalf("state = %v, early arrival should stay at school", s.CurrentState)
	}
	if s.ScheduledState != citizen.StateUnknown || !s.ScheduledStateTime.Equal(at(tuesday, 8, 0)) {
		t.Fatalf("early arrival decided %v at %v, want a wait until class start", s.ScheduledState, s.ScheduledStateTime)
	}
}

func TestSuccessorShiftTable(t *testing.T) {
	threeShift := building.WorkTime{WorkAtNight: true, WorkShifts: 3}
	twoShift := building.WorkTime{WorkShifts: 2}
	twoContinuous := building.WorkTime{WorkAtNight: true, HasContinuousWorkShift: true, WorkShifts: 2}
	oneContinuous := building.WorkTime{HasContinuousWorkShift: true, WorkShifts: 1}

	cases := []struct {
		shift citizen.WorkShift
		wt    building.WorkTime
		next  citizen.WorkShift
		ok    bool
	}{
		{citizen.ShiftFirst, twoShift, citizen.ShiftSecond, true},
		{citizen.ShiftFirst, oneContinuous, 0, false},
		{citizen.ShiftSecond, threeShift, citizen.ShiftNight, true},
		{citizen.ShiftSecond, twoShift, 0, false},
		{citizen.ShiftNight, threeShift, citizen.ShiftFirst, true},
		{citizen.ShiftContinuousDay, twoContinuous, citizen.ShiftContinuousNight, true},
		{citizen.ShiftContinuousDay, oneContinuous, 0, false},
		{citizen.ShiftContinuousNight, twoContinuous, citizen.ShiftContinuousDay, true},
		{citizen.ShiftUnemployed, threeShift, 0, false},
	}
	for _, tc := range cases {
		next, ok := successorShift(tc.shift, tc.wt)
		if ok != tc.ok || (ok && next != tc.next) {
			t.Fatalf("successor(%v) = %v,%v, want %v,%v", tc.shift, next, ok, tc.next, tc.ok)
		}
	}
}

func TestNewHireGetsShiftAndDeparture(t *testing.T) {
	f := newFixture(at(tuesday, 7, 0), &scriptRand{}, electricityPlant)
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 3, Work: 9}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	s := f.sched.m[1]
	if s.WorkShift != citizen.ShiftFirst {
		t.Fatalf("shift = %v, want first", s.WorkShift)
	}
	if s.WorkStatus != citizen.WorkStatusWorking {
		t.Fatalf("status = %v, want working", s.WorkStatus)
	}
	if s.ScheduledState != citizen.StateAtWork {
		t.Fatalf("scheduled state = %v, want at_work", s.ScheduledState)
	}
	// Estimated half hour of travel plus the quarter-hour cycle before the
	// nine o'clock shift.
	if want := at(tuesday, 8, 15); !s.ScheduledStateTime.Equal(want) {
		t.Fatalf("departure = %v, want %v", s.ScheduledStateTime, want)
	}
}

func TestFreeCitizenGoesShopping(t *testing.T) {
	f := newFixture(at(tuesday, 12, 0), &scriptRand{chances: []bool{true}}, electricityPlant)
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 3}
	f.sched.m[1] = citizen.Schedule{CurrentState: citizen.StateAtHome}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	s := f.sched.m[1]
	if s.ScheduledState != citizen.StateShopping {
		t.Fatalf("scheduled state = %v, want shopping", s.ScheduledState)
	}
	if !s.ScheduledStateTime.IsZero() {
		t.Fatalf("shopping should start immediately")
	}

	// The next tick resolves the shop and starts the journey.
	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(f.moves.moves) != 1 || f.moves.moves[0] != 12 {
		t.Fatalf("moves = %v, want [12]", f.moves.moves)
	}
}

func TestFreeCitizenSleepsAtNight(t *testing.T) {
	f := newFixture(at(tuesday, 23, 30), &scriptRand{chances: []bool{true, true, true}}, nil)
	f.cits.infos[1] = ports.CitizenInfo{Age: citizen.AgeAdult, Home: 3, Location: 3}
	f.sched.m[1] = citizen.Schedule{CurrentState: citizen.StateAtHome}

	if err := f.uc.ProcessTick(context.Background(), 1); err != nil {
		t.Fatalf("tick: %v", err)
	}
	s := f.sched.m[1]
	if s.ScheduledState != citizen.StateUnknown {
		t.Fatalf("scheduled state = %v, want unknown until morning", s.ScheduledState)
	}
	want := at(tuesday, 6, 0).Add(24 * time.Hour)
	if !s.ScheduledStateTime.Equal(want) {
		t.Fatalf("wake-up = %v, want %v", s.ScheduledStateTime, want)
	}
}

func TestVacationCountdown(t *testing.T) {
	f := newFixture(at(tuesday, 0, 0), &scriptRand{}, nil)
	f.sched.m[1] = citizen.Schedule{
		WorkStatus:       citizen.WorkStatusOnVacation,
		VacationDaysLeft: 2,
	}

	f.uc.BeginNewDay()
	if s := f.sched.m[1]; s.VacationDaysLeft != 1 || s.WorkStatus != citizen.WorkStatusOnVacation {
		t.Fatalf("after one day: %d days, status %v", s.VacationDaysLeft, s.WorkStatus)
	}

	f.uc.BeginNewDay()
	if s := f.sched.m[1]; s.VacationDaysLeft != 0 || s.WorkStatus != citizen.WorkStatusWorking {
		t.Fatalf("after two days: %d days, status %v", s.VacationDaysLeft, s.WorkStatus)
	}
}

func TestStartVacation(t *testing.T) {
	f := newFixture(at(tuesday, 0, 0), &scriptRand{}, nil)
	f.sched.m[1] = citizen.Schedule{WorkStatus: citizen.WorkStatusWorking}

	if err := f.uc.StartVacation(1, 3); err != nil {
		t.Fatalf("start vacation: %v", err)
	}
	if s := f.sched.m[1]; s.VacationDaysLeft != 3 || s.WorkStatus != citizen.WorkStatusOnVacation {
		t.Fatalf("vacation not recorded: %d days, status %v", s.VacationDaysLeft, s.WorkStatus)
	}
	if err := f.uc.StartVacation(0, 3); !errors.Is(err, ports.ErrBadCitizenID) {
		t.Fatalf("zero id accepted")
	}
}

func TestSweepDropsDemolishedAndExpiredBurns(t *testing.T) {
	wt := newWTRepo()
	burns := newBurnRepo()
	wt.Set(1, building.WorkTime{WorkShifts: 2})
	wt.Set(2, building.WorkTime{WorkShifts: 2})
	wt.Set(3, building.WorkTime{WorkShifts: 2})
	burns.Set(3, building.BurnTime{StartDate: at(tuesday, 0, 0), Duration: 1})

	sw := Sweeper{
		Cfg:       SweeperConfig{Steps: 2},
		Clock:     frozenClock{at: at(tuesday, 12, 0)},
		WorkTimes: wt,
		BurnTimes: burns,
		Buildings: stubBuildings{infos: map[building.ID]ports.BuildingInfo{
			3: {Active: true},
		}},
	}
	sw.Sweep(1) // processes the odd slice: buildings 1 and 3

	if _, ok := wt.Get(1); ok {
		t.Fatalf("demolished building 1 kept its record")
	}
	if _, ok := wt.Get(2); !ok {
		t.Fatalf("building 2 is outside this slice and must be kept")
	}
	if _, ok := wt.Get(3); !ok {
		t.Fatalf("live building 3 lost its record")
	}
	if _, ok := burns.Get(3); ok {
		t.Fatalf("expired burn on building 3 not cleared")
	}
}

func TestMarkBurning(t *testing.T) {
	burns := newBurnRepo()
	sw := Sweeper{
		Cfg:       SweeperConfig{Steps: 2},
		Clock:     frozenClock{at: at(tuesday, 12, 0)},
		WorkTimes: newWTRepo(),
		BurnTimes: burns,
		Buildings: stubBuildings{},
	}
	sw.MarkBurning(5, 2)
	if !sw.IsBurning(5) {
		t.Fatalf("fresh fire not burning")
	}
	if sw.IsBurning(6) {
		t.Fatalf("building 6 never burned")
	}
}
