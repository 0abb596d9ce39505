package citizen

import (
	"encoding/binary"
	"time"

	"citypulse/internal/domain/building"
)

// RecordSize is the fixed size of a serialized schedule.
const RecordSize = 8

// Record layout, given a reference time for compression:
//
//	byte 0   low nibble work shift, high nibble work status
//	byte 1   low nibble scheduled state, high nibble vacation days left
//	byte 2-3 little-endian minutes from the reference time until the
//	         scheduled transition; 0 encodes the unset sentinel
//	byte 4-5 little-endian travel time scaled by 65535/maxTravelTime
//	byte 6   low nibble school class, high nibble school status
//	byte 7   visit-place retry counter
//
// Shift and class hours are deliberately not stored; they are re-derived on
// read so saved citizens pick up live configuration changes.

// HoursResolver recomputes the shift and class hour fields of a freshly
// decoded schedule from current configuration and the building's work time.
type HoursResolver func(s *Schedule)

// MarshalRecord encodes the schedule relative to ref. A scheduled time at or
// before ref collapses to the unset sentinel, which is semantically
// equivalent: the transition executes as soon as possible.
func (s *Schedule) MarshalRecord(ref time.Time, maxTravelTime float64) [RecordSize]byte {
	var out [RecordSize]byte

	out[0] = byte(s.WorkShift)&0x0F | byte(s.WorkStatus)<<4

	vacation := s.VacationDaysLeft
	if vacation > 15 {
		vacation = 15
	}
	out[1] = byte(s.ScheduledState)&0x0F | vacation<<4

	var minutes uint16
	if !s.ScheduledStateTime.IsZero() {
		delta := s.ScheduledStateTime.Sub(ref).Minutes()
		switch {
		case delta <= 0:
			minutes = 0
		case delta >= 65535:
			minutes = 65535
		default:
			minutes = uint16(delta)
		}
	}
	binary.LittleEndian.PutUint16(out[2:4], minutes)

	var travel uint16
	if maxTravelTime > 0 {
		scaled := s.TravelTimeToWork * 65535 / maxTravelTime
		switch {
		case scaled <= 0:
			travel = 0
		case scaled >= 65535:
			travel = 65535
		default:
			travel = uint16(scaled)
		}
	}
	binary.LittleEndian.PutUint16(out[4:6], travel)

	out[6] = byte(s.SchoolClass)&0x0F | byte(s.SchoolStatus)<<4
	out[7] = s.FindVisitPlaceAttempts

	return out
}

// UnmarshalRecord decodes a schedule serialized by MarshalRecord. The work
// building is supplied by the caller because it is stored with the citizen,
// not inside the record; resolve re-derives the hour fields afterwards and
// may be nil.
func UnmarshalRecord(data [RecordSize]byte, ref time.Time, workBuilding building.ID, maxTravelTime float64, resolve HoursResolver) Schedule {
	s := Schedule{
		CurrentState:     StateUnknown,
		WorkShift:        WorkShift(data[0] & 0x0F),
		WorkStatus:       WorkStatus(data[0] >> 4),
		ScheduledState:   ResidentState(data[1] & 0x0F),
		VacationDaysLeft: data[1] >> 4,
		SchoolClass:      SchoolClass(data[6] & 0x0F),
		SchoolStatus:     SchoolStatus(data[6] >> 4),

		FindVisitPlaceAttempts: data[7],
	}
	s.WorkBuilding = workBuilding

	if minutes := binary.LittleEndian.Uint16(data[2:4]); minutes != 0 {
		s.ScheduledStateTime = ref.Add(time.Duration(minutes) * time.Minute)
	}

	if travel := binary.LittleEndian.Uint16(data[4:6]); travel != 0 && maxTravelTime > 0 {
		s.TravelTimeToWork = float64(travel) * maxTravelTime / 65535
	}

	if resolve != nil {
		resolve(&s)
	}
	return s
}
