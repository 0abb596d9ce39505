package demo

import (
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// Well-known building IDs of the seeded town.
const (
	HomeBlockA     building.ID = 1
	HomeBlockB     building.ID = 2
	CornerShop     building.ID = 10
	Diner          building.ID = 11
	Office         building.ID = 12
	PowerPlant     building.ID = 13
	PoliceStation  building.ID = 14
	ElementarySch  building.ID = 15
	University     building.ID = 16
	CityPark       building.ID = 17
	ConcertHall    building.ID = 18
	FactoryGeneric building.ID = 19
)

// SeedTown fills the city with a small working population so a fresh server
// has something to schedule.
func SeedTown(c *City) {
	add := func(id building.ID, svc building.Service, sub building.SubService, lvl building.Level, x, y float64, mut func(*ports.BuildingInfo)) {
		info := ports.BuildingInfo{
			Category: building.Category{Service: svc, SubService: sub, Level: lvl},
			Active:   true,
		}
		if mut != nil {
			mut(&info)
		}
		c.AddBuilding(id, Building{Info: info, X: x, Y: y})
	}

	add(HomeBlockA, building.ServiceResidential, building.SubServiceNone, building.Level1, 0, 0, nil)
	add(HomeBlockB, building.ServiceResidential, building.SubServiceNone, building.Level2, 1, 0, nil)
	add(CornerShop, building.ServiceCommercial, building.SubServiceCommercialLow, building.Level1, 2, 1, func(i *ports.BuildingInfo) {
		i.Name = "Corner Shop"
		i.WorkerCount = 3
	})
	add(Diner, building.ServiceCommercial, building.SubServiceCommercialLeisure, building.Level1, 2, 2, func(i *ports.BuildingInfo) {
		i.Name = "All-Night Diner"
		i.WorkerCount = 4
	})
	add(Office, building.ServiceOffice, building.SubServiceNone, building.Level2, 4, 2, func(i *ports.BuildingInfo) {
		i.WorkerCount = 12
	})
	add(PowerPlant, building.ServiceElectricity, building.SubServiceNone, building.Level1, 8, 1, func(i *ports.BuildingInfo) {
		i.WorkerCount = 9
	})
	add(PoliceStation, building.ServicePolice, building.SubServiceNone, building.Level1, 3, 0, func(i *ports.BuildingInfo) {
		i.WorkerCount = 6
	})
	add(ElementarySch, building.ServiceEducation, building.SubServiceNone, building.Level1, 1, 2, func(i *ports.BuildingInfo) {
		i.WorkerCount = 5
	})
	add(University, building.ServiceEducation, building.SubServiceNone, building.Level3, 5, 4, func(i *ports.BuildingInfo) {
		i.WorkerCount = 8
	})
	add(CityPark, building.ServiceBeautification, building.SubServiceNone, building.Level1, 2, 3, func(i *ports.BuildingInfo) {
		i.Name = "City Park"
		i.NightTours = true
	})
	add(ConcertHall, building.ServiceMonument, building.SubServiceNone, building.Level3, 6, 3, func(i *ports.BuildingInfo) {
		i.Name = "Concert Hall"
		i.RealUnique = true
	})
	add(FactoryGeneric, building.ServiceIndustrial, building.SubServiceIndustrialGeneric, building.Level1, 9, 3, func(i *ports.BuildingInfo) {
		i.WorkerCount = 15
	})

	person := func(id citizen.ID, age citizen.Age, home, work, school building.ID) {
		c.AddCitizen(id, ports.CitizenInfo{
			Age:      age,
			Home:     home,
			Work:     work,
			School:   school,
			Location: home,
		})
	}

	person(1, citizen.AgeAdult, HomeBlockA, Office, 0)
	person(2, citizen.AgeAdult, HomeBlockA, PowerPlant, 0)
	person(3, citizen.AgeAdult, HomeBlockB, PowerPlant, 0)
	person(4, citizen.AgeYoung, HomeBlockB, CornerShop, 0)
	person(5, citizen.AgeYoung, HomeBlockA, Diner, 0)
	person(6, citizen.AgeAdult, HomeBlockB, PoliceStation, 0)
	person(7, citizen.AgeAdult, HomeBlockA, ElementarySch, 0)
	person(8, citizen.AgeChild, HomeBlockA, 0, ElementarySch)
	person(9, citizen.AgeTeen, HomeBlockB, 0, ElementarySch)
	person(10, citizen.AgeYoung, HomeBlockB, 0, University)
	person(11, citizen.AgeSenior, HomeBlockA, 0, 0)
	person(12, citizen.AgeAdult, HomeBlockB, FactoryGeneric, 0)
}
