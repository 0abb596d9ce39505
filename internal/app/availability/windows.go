package availability

import (
	"citypulse/config"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/simtime"
)

// ServiceKind selects one of the windowed city services.
type ServiceKind uint8

const (
	ServiceGarbage ServiceKind = iota
	ServiceMail
	ServiceParkMaintenance
	ServiceRoadMaintenance
)

// BuildingClass is the coarse zoning class the service windows are
// configured by.
type BuildingClass uint8

const (
	ClassResidential BuildingClass = iota
	ClassCommercial
	ClassIndustrial
	ClassOffice
)

// ClassOf maps a building category onto its service-window class.
func ClassOf(cat building.Category) BuildingClass {
	switch cat.Service {
	case building.ServiceResidential:
		return ClassResidential
	case building.ServiceIndustrial, building.ServicePlayerIndustry, building.ServiceFishing:
		return ClassIndustrial
	case building.ServiceOffice:
		return ClassOffice
	default:
		return ClassCommercial
	}
}

// IsServiceHours reports whether the windowed service runs right now for the
// given building class. A window with begin == end runs continuously; one
// with begin > end wraps past midnight.
func (p Policy) IsServiceHours(kind ServiceKind, class BuildingClass) bool {
	w := p.window(kind, class)
	return simtime.HourInWindow(simtime.HourOf(p.Clock.Now()), w.Begin, w.End)
}

// IsGarbageHours reports whether garbage collection may visit the building
// right now.
func (p Policy) IsGarbageHours(id building.ID) bool {
	info, err := p.Buildings.Info(id)
	if err != nil || !info.Active {
		return false
	}
	return p.IsServiceHours(ServiceGarbage, ClassOf(info.Category))
}

// IsMailHours reports whether mail service may visit the building right now.
func (p Policy) IsMailHours(id building.ID) bool {
	info, err := p.Buildings.Info(id)
	if err != nil || !info.Active {
		return false
	}
	return p.IsServiceHours(ServiceMail, ClassOf(info.Category))
}

func (p Policy) window(kind ServiceKind, class BuildingClass) config.Window {
	var cw config.ClassWindows
	switch kind {
	case ServiceGarbage:
		cw = p.Cfg.Services.Garbage
	case ServiceMail:
		cw = p.Cfg.Services.Mail
	case ServiceParkMaintenance:
		cw = p.Cfg.Services.ParkMaintenance
	case ServiceRoadMaintenance:
		cw = p.Cfg.Services.RoadMaintenance
	}
	switch class {
	case ClassResidential:
		return cw.Residential
	case ClassIndustrial:
		return cw.Industrial
	case ClassOffice:
		return cw.Office
	default:
		return cw.Commercial
	}
}
