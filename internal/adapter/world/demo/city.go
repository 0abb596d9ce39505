package demo

import (
	"context"
	"math"
	"sync"

	"citypulse/internal/app/ports"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// travelSpeedKmPerHour is the flat speed used for demo travel estimates.
const travelSpeedKmPerHour = 30

// City is a small self-contained town standing in for the host simulation:
// it implements every host-side port the scheduler consumes, so the server
// can run end to end without an external game attached.
type City struct {
	mu        sync.RWMutex
	buildings map[building.ID]Building
	citizens  map[citizen.ID]ports.CitizenInfo
	events    map[building.ID][2]float64

	// Schedules lets WorkersOf report live shifts and presence.
	Schedules ports.ScheduleRepository

	// OnArrive, when set, is invoked after every completed move. The server
	// wires it to the arrival registration of the scheduler.
	OnArrive func(id citizen.ID)
}

// Building pairs the scheduler-visible info with a position on a km grid.
type Building struct {
	Info ports.BuildingInfo
	X, Y float64
}

func NewCity() *City {
	return &City{
		buildings: make(map[building.ID]Building),
		citizens:  make(map[citizen.ID]ports.CitizenInfo),
		events:    make(map[building.ID][2]float64),
	}
}

func (c *City) AddBuilding(id building.ID, b Building) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buildings[id] = b
}

func (c *City) AddCitizen(id citizen.ID, info ports.CitizenInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.citizens[id] = info
}

// StartEvent opens a city event at the building for the given hour window.
func (c *City) StartEvent(id building.ID, startHour, endHour float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[id] = [2]float64{startHour, endHour}
}

func (c *City) EndEvent(id building.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events, id)
}

// CitizenIDs returns every known citizen, for the tick loop.
func (c *City) CitizenIDs() []citizen.ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]citizen.ID, 0, len(c.citizens))
	for id := range c.citizens {
		out = append(out, id)
	}
	return out
}

// Info implements ports.BuildingProvider.
func (c *City) Info(id building.ID) (ports.BuildingInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.buildings[id]
	if !ok {
		return ports.BuildingInfo{}, ports.ErrNotFound
	}
	return b.Info, nil
}

// EventHours implements ports.BuildingProvider.
func (c *City) EventHours(id building.ID) (float64, float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hrs, ok := c.events[id]
	return hrs[0], hrs[1], ok
}

// Citizens returns the ports.CitizenProvider view of the city. City cannot
// carry the Info method for both providers itself.
func (c *City) Citizens() ports.CitizenProvider { return citizenView{c: c} }

type citizenView struct{ c *City }

func (v citizenView) Info(id citizen.ID) (ports.CitizenInfo, error) {
	return v.c.CitizenInfo(id)
}

func (c *City) CitizenInfo(id citizen.ID) (ports.CitizenInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.citizens[id]
	if !ok {
		return ports.CitizenInfo{}, ports.ErrNotFound
	}
	return info, nil
}

// WorkersOf implements ports.WorkforceProvider by joining citizen records
// with their live schedules.
func (c *City) WorkersOf(id building.ID) ([]ports.WorkerInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []ports.WorkerInfo
	for cid, info := range c.citizens {
		if info.Work != id {
			continue
		}
		w := ports.WorkerInfo{Citizen: cid}
		if c.Schedules != nil {
			if s, err := c.Schedules.Get(cid); err == nil {
				w.Shift = s.WorkShift
				w.OnVacation = s.WorkStatus == citizen.WorkStatusOnVacation
				w.AtWork = s.CurrentState == citizen.StateAtWork
			}
		}
		out = append(out, w)
	}
	return out, nil
}

// MoveTo implements ports.MovementService. Demo travel is instantaneous; the
// arrival callback fires before MoveTo returns.
func (c *City) MoveTo(_ context.Context, id citizen.ID, target building.ID) error {
	c.mu.Lock()
	info, ok := c.citizens[id]
	if !ok {
		c.mu.Unlock()
		return ports.ErrNotFound
	}
	if _, ok := c.buildings[target]; !ok {
		c.mu.Unlock()
		return ports.ErrNotFound
	}
	info.Location = target
	c.citizens[id] = info
	arrive := c.OnArrive
	c.mu.Unlock()

	if arrive != nil {
		arrive(id)
	}
	return nil
}

// Redirect implements ports.MovementService by sending the citizen home.
func (c *City) Redirect(ctx context.Context, id citizen.ID, _ ports.RedirectReason) error {
	c.mu.RLock()
	info, ok := c.citizens[id]
	c.mu.RUnlock()
	if !ok {
		return ports.ErrNotFound
	}
	if info.Home == 0 || info.Location == info.Home {
		return nil
	}
	return c.MoveTo(ctx, id, info.Home)
}

// Estimate implements ports.TravelEstimator with Manhattan distance at a
// flat speed.
func (c *City) Estimate(from, to building.ID) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, okA := c.buildings[from]
	b, okB := c.buildings[to]
	if !okA || !okB {
		return 0.5
	}
	distance := math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
	return distance / travelSpeedKmPerHour
}

// FindVisitPlace implements ports.VisitPlaceFinder: the nearest qualifying
// building for the hint.
func (c *City) FindVisitPlace(_ citizen.ID, near building.ID, hint citizen.ScheduleHint) (building.ID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	origin, ok := c.buildings[near]
	if !ok {
		return 0, false
	}

	var best building.ID
	bestDist := math.MaxFloat64
	for id, b := range c.buildings {
		if id == near || !b.Info.Active || !visitMatches(b.Info.Category, hint) {
			continue
		}
		d := math.Abs(origin.X-b.X) + math.Abs(origin.Y-b.Y)
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != 0
}

func visitMatches(cat building.Category, hint citizen.ScheduleHint) bool {
	switch hint {
	case citizen.HintRelaxNearby:
		return cat.Service == building.ServiceBeautification ||
			cat.SubService == building.SubServiceCommercialLeisure
	case citizen.HintAttendingEvent, citizen.HintOnTour:
		return cat.Service == building.ServiceMonument || cat.Service == building.ServiceTourism
	default:
		return cat.Service == building.ServiceCommercial
	}
}
