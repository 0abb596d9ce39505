package building

// ID identifies a building instance. Zero means "no building".
type ID uint32

// Service is the top-level city service a building belongs to.
type Service uint8

const (
	ServiceNone Service = iota
	ServiceResidential
	ServiceCommercial
	ServiceIndustrial
	ServiceOffice
	ServiceEducation
	ServiceHealthCare
	ServicePolice
	ServiceFire
	ServiceDisaster
	ServiceElectricity
	ServiceWater
	ServiceGarbage
	ServiceRoad
	ServicePublicTransport
	ServiceBeautification
	ServiceMonument
	ServiceTourism
	ServiceHotel
	ServicePlayerIndustry
	ServicePlayerEducation
	ServiceFishing
	ServiceMuseums
	ServiceVarsitySports
	ServiceServicePoint
)

// SubService refines commercial and industrial services.
type SubService uint8

const (
	SubServiceNone SubService = iota
	SubServiceCommercialLow
	SubServiceCommercialHigh
	SubServiceCommercialTourist
	SubServiceCommercialLeisure
	SubServiceIndustrialGeneric
	SubServiceIndustrialOil
	SubServiceIndustrialOre
	SubServiceIndustrialFarming
	SubServiceIndustrialForestry
)

// Level is the building level; education uses it to distinguish primary (1),
// secondary (2) and university (3).
type Level uint8

const (
	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
)

// Category is the full classification a building carries for scheduling
// purposes.
type Category struct {
	Service    Service
	SubService SubService
	Level      Level
}

// Membership tables replacing the original deep switch chains. Every rule of
// the category->behavior mapping lives here and nowhere else.

var nightActiveServices = map[Service]struct{}{
	ServiceTourism:         {},
	ServiceHotel:           {},
	ServicePolice:          {},
	ServiceFire:            {},
	ServiceDisaster:        {},
	ServicePublicTransport: {},
	ServiceElectricity:     {},
	ServiceWater:           {},
	ServiceHealthCare:      {},
	ServiceGarbage:         {},
	ServiceRoad:            {},
}

var nightActiveSubServices = map[SubService]struct{}{
	SubServiceIndustrialOil:     {},
	SubServiceIndustrialOre:     {},
	SubServiceCommercialTourist: {},
	SubServiceCommercialLeisure: {},
}

var weekendActiveServices = map[Service]struct{}{
	ServicePlayerIndustry:  {},
	ServiceTourism:         {},
	ServiceHotel:           {},
	ServiceElectricity:     {},
	ServiceWater:           {},
	ServiceBeautification:  {},
	ServiceHealthCare:      {},
	ServicePolice:          {},
	ServiceFire:            {},
	ServicePublicTransport: {},
	ServiceDisaster:        {},
	ServiceMonument:        {},
	ServiceGarbage:         {},
	ServiceRoad:            {},
	ServiceMuseums:         {},
	ServiceVarsitySports:   {},
	ServiceFishing:         {},
}

var weekendActiveSubServices = map[SubService]struct{}{
	SubServiceCommercialTourist:  {},
	SubServiceCommercialLeisure:  {},
	SubServiceIndustrialOil:      {},
	SubServiceIndustrialOre:      {},
	SubServiceIndustrialFarming:  {},
	SubServiceIndustrialForestry: {},
}

var extendedShiftServices = map[Service]struct{}{
	ServiceBeautification:  {},
	ServiceEducation:       {},
	ServicePlayerIndustry:  {},
	ServicePlayerEducation: {},
	ServiceFishing:         {},
}

var extendedShiftSubServices = map[SubService]struct{}{
	SubServiceIndustrialFarming:  {},
	SubServiceIndustrialForestry: {},
}

var continuousShiftServices = map[Service]struct{}{
	ServiceHealthCare: {},
	ServicePolice:     {},
	ServiceFire:       {},
	ServiceDisaster:   {},
}

// essentialServices are the categories whose operation must never lapse
// during a shift handoff: a departing worker waits for the next shift.
var essentialServices = map[Service]struct{}{
	ServiceElectricity:     {},
	ServiceWater:           {},
	ServiceHealthCare:      {},
	ServicePolice:          {},
	ServiceFire:            {},
	ServiceDisaster:        {},
	ServicePublicTransport: {},
	ServiceRoad:            {},
	ServiceHotel:           {},
	ServiceServicePoint:    {},
}

func (c Category) worksAtNight() bool {
	if _, ok := nightActiveServices[c.Service]; ok {
		return true
	}
	_, ok := nightActiveSubServices[c.SubService]
	return ok
}

func (c Category) worksAtWeekends() bool {
	if _, ok := weekendActiveServices[c.Service]; ok {
		return true
	}
	_, ok := weekendActiveSubServices[c.SubService]
	return ok
}

func (c Category) hasExtendedShift() bool {
	if _, ok := extendedShiftServices[c.Service]; ok {
		return true
	}
	_, ok := extendedShiftSubServices[c.SubService]
	return ok
}

func (c Category) hasContinuousShift() bool {
	_, ok := continuousShiftServices[c.Service]
	return ok
}

// IsEssentialService reports whether the category participates in the shift
// handoff gate.
func (c Category) IsEssentialService() bool {
	_, ok := essentialServices[c.Service]
	return ok
}

// IsEducation reports whether workers at this building follow the teacher
// shift-hour rules.
func (c Category) IsEducation() bool {
	return c.Service == ServiceEducation || c.Service == ServicePlayerEducation
}
