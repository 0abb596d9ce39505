package ports

import (
	"context"

	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// BuildingInfo is the slice of host building state the scheduler reads.
type BuildingInfo struct {
	Category building.Category
	Name     string

	// WorkerCount is the live worker headcount, for the workforce gate.
	WorkerCount int

	Active          bool
	AreaMain        bool
	Warehouse       bool
	CimCare         bool // elder/child-care facility
	RealUnique      bool // the one real instance of a unique/monument building
	NoiseRestricted bool // NIMBY district policy
	NightTours      bool // park district policy
}

// BuildingProvider exposes host building state and city events.
type BuildingProvider interface {
	Info(id building.ID) (BuildingInfo, error)
	// EventHours returns the start and end hour of a city event currently
	// occupying the building, if any.
	EventHours(id building.ID) (start, end float64, ok bool)
}

// WorkerInfo describes one coworker for the shift handoff gate.
type WorkerInfo struct {
	Citizen    citizen.ID
	Shift      citizen.WorkShift
	OnVacation bool
	AtWork     bool
}

// WorkforceProvider enumerates the workers assigned to a building.
type WorkforceProvider interface {
	WorkersOf(id building.ID) ([]WorkerInfo, error)
}

// CitizenInfo is the slice of host citizen state the scheduler reads.
type CitizenInfo struct {
	Age      citizen.Age
	Dead     bool
	Sick     bool
	Arrested bool

	Home     building.ID
	Work     building.ID
	School   building.ID
	Location building.ID
	Moving   bool
}

// CitizenProvider exposes host citizen state.
type CitizenProvider interface {
	Info(id citizen.ID) (CitizenInfo, error)
}

// RedirectReason classifies the forced relocations of step 1 of the tick
// protocol.
type RedirectReason uint8

const (
	RedirectRelease RedirectReason = iota
	RedirectHospital
	RedirectJail
)

// MovementService performs the actual relocation of a citizen. MoveTo
// failures are recoverable; the orchestrator retries on the next tick.
type MovementService interface {
	MoveTo(ctx context.Context, id citizen.ID, target building.ID) error
	Redirect(ctx context.Context, id citizen.ID, reason RedirectReason) error
}

// TravelEstimator predicts travel time in hours between two buildings, used
// when no smoothed per-citizen estimate applies.
type TravelEstimator interface {
	Estimate(from, to building.ID) float64
}

// VisitPlaceFinder picks a target building for shopping and relaxing trips.
type VisitPlaceFinder interface {
	FindVisitPlace(id citizen.ID, near building.ID, hint citizen.ScheduleHint) (building.ID, bool)
}
