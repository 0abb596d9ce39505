package demo

import (
	"context"
	"testing"

	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

func seeded() *City {
	c := NewCity()
	SeedTown(c)
	return c
}

func TestSeedTownWiring(t *testing.T) {
	c := seeded()

	info, err := c.Info(PowerPlant)
	if err != nil {
		t.Fatalf("power plant missing: %v", err)
	}
	if info.Category.Service != building.ServiceElectricity {
		t.Fatalf("power plant category: %v", info.Category.Service)
	}

	workers, err := c.WorkersOf(PowerPlant)
	if err != nil || len(workers) != 2 {
		t.Fatalf("power plant workers = %v (%v), want 2", workers, err)
	}

	ci, err := c.Citizens().Info(8)
	if err != nil || ci.School != ElementarySch {
		t.Fatalf("citizen 8 should attend the elementary school: %+v (%v)", ci, err)
	}
}

func TestMoveToFiresArrivalCallback(t *testing.T) {
	c := seeded()
	var arrived []citizen.ID
	c.OnArrive = func(id citizen.ID) { arrived = append(arrived, id) }

	if err := c.MoveTo(context.Background(), 1, Office); err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(arrived) != 1 || arrived[0] != 1 {
		t.Fatalf("arrival callback = %v", arrived)
	}
	info, _ := c.Citizens().Info(1)
	if info.Location != Office {
		t.Fatalf("location = %v, want office", info.Location)
	}
}

func TestEstimateScalesWithDistance(t *testing.T) {
	c := seeded()
	short := c.Estimate(HomeBlockA, PoliceStation)
	long := c.Estimate(HomeBlockA, PowerPlant)
	if short <= 0 || long <= short {
		t.Fatalf("estimates short=%v long=%v", short, long)
	}
}

func TestFindVisitPlaceByHint(t *testing.T) {
	c := seeded()

	shop, ok := c.FindVisitPlace(1, HomeBlockA, citizen.HintNone)
	if !ok {
		t.Fatalf("no shopping target found")
	}
	if info, _ := c.Info(shop); info.Category.Service != building.ServiceCommercial {
		t.Fatalf("shopping target is %v", info.Category.Service)
	}

	relax, ok := c.FindVisitPlace(1, HomeBlockA, citizen.HintRelaxNearby)
	if !ok {
		t.Fatalf("no leisure target found")
	}
	if relax != CityPark && relax != Diner {
		t.Fatalf("leisure target = %v", relax)
	}
}

func TestEventHours(t *testing.T) {
	c := seeded()
	if _, _, ok := c.EventHours(ConcertHall); ok {
		t.Fatalf("no event seeded yet")
	}
	c.StartEvent(ConcertHall, 19, 23)
	start, end, ok := c.EventHours(ConcertHall)
	if !ok || start != 19 || end != 23 {
		t.Fatalf("event hours = %v,%v,%v", start, end, ok)
	}
	c.EndEvent(ConcertHall)
	if _, _, ok := c.EventHours(ConcertHall); ok {
		t.Fatalf("event not cleared")
	}
}
