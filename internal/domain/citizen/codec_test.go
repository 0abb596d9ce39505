package citizen

import (
	"testing"
	"time"

	"citypulse/internal/domain/building"
)

const testMaxTravel = 4.0

func TestRecordRoundTrip(t *testing.T) {
	ref := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	in := Schedule{
		WorkShift:              ShiftNight,
		WorkStatus:             WorkStatusOnVacation,
		ScheduledState:         StateShopping,
		ScheduledStateTime:     ref.Add(90 * time.Minute),
		TravelTimeToWork:       2.0,
		SchoolClass:            ClassNight,
		SchoolStatus:           SchoolStatusStudying,
		VacationDaysLeft:       7,
		FindVisitPlaceAttempts: 3,
		WorkBuilding:           building.ID(42),
	}

	data := in.MarshalRecord(ref, testMaxTravel)
	out := UnmarshalRecord(data, ref, building.ID(42), testMaxTravel, nil)

	if out.WorkShift != in.WorkShift {
		t.Fatalf("work shift: got %s want %s", out.WorkShift, in.WorkShift)
	}
	if out.WorkStatus != in.WorkStatus {
		t.Fatalf("work status: got %d want %d", out.WorkStatus, in.WorkStatus)
	}
	if out.ScheduledState != in.ScheduledState {
		t.Fatalf("scheduled state: got %s want %s", out.ScheduledState, in.ScheduledState)
	}
	if !out.ScheduledStateTime.Equal(in.ScheduledStateTime) {
		t.Fatalf("scheduled time: got %v want %v", out.ScheduledStateTime, in.ScheduledStateTime)
	}
	if out.SchoolClass != in.SchoolClass {
		t.Fatalf("school class: got %d want %d", out.SchoolClass, in.SchoolClass)
	}
	if out.SchoolStatus != in.SchoolStatus {
		t.Fatalf("school status: got %d want %d", out.SchoolStatus, in.SchoolStatus)
	}
	if out.VacationDaysLeft != in.VacationDaysLeft {
		t.Fatalf("vacation days: got %d want %d", out.VacationDaysLeft, in.VacationDaysLeft)
	}
	if out.FindVisitPlaceAttempts != in.FindVisitPlaceAttempts {
		t.Fatalf("visit attempts: got %d want %d", out.FindVisitPlaceAttempts, in.FindVisitPlaceAttempts)
	}
	if out.WorkBuilding != in.WorkBuilding {
		t.Fatalf("work building: got %d want %d", out.WorkBuilding, in.WorkBuilding)
	}
	if out.CurrentState != StateUnknown {
		t.Fatalf("current state is not stored and must decode as unknown")
	}
	// Travel time is quantized to 1/65535 of the maximum.
	diff := out.TravelTimeToWork - in.TravelTimeToWork
	if diff < 0 {
		diff = -diff
	}
	if diff > testMaxTravel/65535 {
		t.Fatalf("travel time: got %v want ~%v", out.TravelTimeToWork, in.TravelTimeToWork)
	}
}

func TestRecordUnsetScheduledTime(t *testing.T) {
	ref := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	in := Schedule{ScheduledState: StateAtHome}
	data := in.MarshalRecord(ref, testMaxTravel)
	if data[2] != 0 || data[3] != 0 {
		t.Fatalf("unset scheduled time must encode as 0")
	}
	out := UnmarshalRecord(data, ref, 0, testMaxTravel, nil)
	if !out.ScheduledStateTime.IsZero() {
		t.Fatalf("expected unset sentinel after decode, got %v", out.ScheduledStateTime)
	}
}

func TestRecordElapsedTimeCollapsesToUnset(t *testing.T) {
	ref := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	in := Schedule{ScheduledState: StateAtWork, ScheduledStateTime: ref.Add(-time.Hour)}
	data := in.MarshalRecord(ref, testMaxTravel)
	out := UnmarshalRecord(data, ref, 0, testMaxTravel, nil)
	if !out.ScheduledStateTime.IsZero() {
		t.Fatalf("a scheduled time before the reference collapses to immediate execution")
	}
}

func TestRecordVacationDaysClamped(t *testing.T) {
	ref := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	in := Schedule{VacationDaysLeft: 200}
	data := in.MarshalRecord(ref, testMaxTravel)
	out := UnmarshalRecord(data, ref, 0, testMaxTravel, nil)
	if out.VacationDaysLeft != 15 {
		t.Fatalf("vacation days clamp to the nibble maximum, got %d", out.VacationDaysLeft)
	}
}

func TestRecordResolverRederivesHours(t *testing.T) {
	ref := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	in := Schedule{WorkShift: ShiftFirst}
	data := in.MarshalRecord(ref, testMaxTravel)
	out := UnmarshalRecord(data, ref, 7, testMaxTravel, func(s *Schedule) {
		s.WorkShiftStartHour = 9
		s.WorkShiftEndHour = 18
	})
	if out.WorkShiftStartHour != 9 || out.WorkShiftEndHour != 18 {
		t.Fatalf("resolver must repopulate hour fields, got [%v,%v]", out.WorkShiftStartHour, out.WorkShiftEndHour)
	}
}
