package citizen

// ID identifies a citizen. Zero is invalid and rejected by the schedule APIs.
type ID uint32

// ResidentState is the activity a citizen is engaged in. Values must fit a
// nibble for the schedule record layout.
type ResidentState uint8

const (
	StateUnknown ResidentState = iota
	StateAtHome
	StateAtSchool
	StateAtWork
	StateShopping
	StateLunch
	StateRelaxing
	StateVisiting
	StateEvacuation
	StateInShelter
	StateInTransition
	StateIgnored
)

func (s ResidentState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAtHome:
		return "at_home"
	case StateAtSchool:
		return "at_school"
	case StateAtWork:
		return "at_work"
	case StateShopping:
		return "shopping"
	case StateLunch:
		return "lunch"
	case StateRelaxing:
		return "relaxing"
	case StateVisiting:
		return "visiting"
	case StateEvacuation:
		return "evacuation"
	case StateInShelter:
		return "in_shelter"
	case StateInTransition:
		return "in_transition"
	case StateIgnored:
		return "ignored"
	default:
		return "invalid"
	}
}

// WorkShift is a citizen's assigned shift at their work building.
type WorkShift uint8

const (
	ShiftUnemployed WorkShift = iota
	ShiftFirst
	ShiftSecond
	ShiftNight
	ShiftContinuousDay
	ShiftContinuousNight
	ShiftEvent
)

func (w WorkShift) String() string {
	switch w {
	case ShiftUnemployed:
		return "unemployed"
	case ShiftFirst:
		return "first"
	case ShiftSecond:
		return "second"
	case ShiftNight:
		return "night"
	case ShiftContinuousDay:
		return "continuous_day"
	case ShiftContinuousNight:
		return "continuous_night"
	case ShiftEvent:
		return "event"
	default:
		return "invalid"
	}
}

// SchoolClass is a student's assigned class block.
type SchoolClass uint8

const (
	ClassNone SchoolClass = iota
	ClassDay
	ClassNight
)

// WorkStatus tracks whether a citizen currently holds a job and whether they
// are on vacation from it.
type WorkStatus uint8

const (
	WorkStatusNone WorkStatus = iota
	WorkStatusWorking
	WorkStatusOnVacation
)

// SchoolStatus mirrors WorkStatus for students.
type SchoolStatus uint8

const (
	SchoolStatusNone SchoolStatus = iota
	SchoolStatusStudying
	SchoolStatusOnVacation
)

// Age buckets drive behavior selection: children and teens go to school,
// seniors neither work nor take lunch breaks.
type Age uint8

const (
	AgeChild Age = iota
	AgeTeen
	AgeYoung
	AgeAdult
	AgeSenior
)

// ScheduleHint narrows the scope of the next visit-place search.
type ScheduleHint uint8

const (
	HintNone ScheduleHint = iota
	HintLocalSearch
	HintRelaxNearby
	HintAttendingEvent
	HintOnTour
)
