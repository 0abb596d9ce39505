package availability

import (
	"math"
	"strings"

	"citypulse/config"
	"citypulse/internal/app/ports"
	"citypulse/internal/app/worktime"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/simtime"
)

// Policy answers "is this building open/working/accepting right now". It
// holds no state of its own beyond the worktime registry and the clock.
type Policy struct {
	Cfg       *config.Config
	Clock     ports.TimeProvider
	WorkTimes worktime.Registry
	Buildings ports.BuildingProvider
}

// deniedVisitNames filters out named parking and garage structures from
// entertainment and shopping target selection.
var deniedVisitNames = []string{"parking", "garage", "car park"}

// IsBuildingWorking reports whether the building is operating right now.
func (p Policy) IsBuildingWorking(id building.ID) bool {
	info, err := p.Buildings.Info(id)
	if err != nil {
		return false
	}
	cat := info.Category

	switch {
	case cat.Service == building.ServiceResidential:
		return true

	case info.CimCare:
		// Care facilities never close; a stale worktime record would only
		// mislead the generic evaluator, so drop it.
		if p.WorkTimes.Exists(id) {
			p.WorkTimes.Remove(id)
		}
		return true

	case (cat.Service == building.ServicePlayerIndustry || cat.Service == building.ServicePlayerEducation) &&
		(info.AreaMain || info.Warehouse):
		p.WorkTimes.Set(id, building.WorkTime{
			WorkAtNight:    true,
			WorkAtWeekends: true,
			WorkShifts:     3,
		})
		return p.workforcePresent(info)

	case cat.Service == building.ServiceBeautification:
		if p.isNightNow() {
			return info.NightTours
		}
		return true
	}

	if !p.workforcePresent(info) {
		return false
	}

	wt := p.WorkTimes.Create(id, cat)
	now := p.Clock.Now()
	h := simtime.HourOf(now)

	if p.isNight(h) {
		if wt.WorkAtNight {
			return true
		}
		if wt.WorkShifts == 2 && !wt.HasContinuousWorkShift {
			start := math.Max(p.Cfg.Hours.WakeUp, p.Cfg.Hours.EarliestWakeUp)
			return simtime.HourInWindow(h, start, p.Cfg.Hours.GoToSleep)
		}
		return false
	}

	if p.Cfg.Quotas.WeekendsEnabled && simtime.IsWeekend(now) && !wt.WorkAtWeekends {
		return false
	}

	switch {
	case wt.HasExtendedWorkShift:
		begin := math.Min(p.Cfg.Hours.EarliestWakeUp, p.extendedAnchor(cat))
		end := p.Cfg.Hours.WorkEnd
		if cat.IsEducation() {
			end = p.Cfg.Hours.SchoolEnd
		}
		if wt.WorkShifts >= 2 {
			end = p.Cfg.Hours.GoToSleep
		}
		return simtime.HourInWindow(h, begin, end)

	case wt.HasContinuousWorkShift:
		if wt.WorkShifts == 1 {
			return simtime.HourInWindow(h, 8, 20)
		}
		return true

	default:
		if wt.WorkShifts == 3 {
			return true
		}
		end := p.Cfg.Hours.WorkEnd
		if wt.WorkShifts == 2 {
			end = p.Cfg.Hours.GoToSleep
		}
		return simtime.HourInWindow(h, p.Cfg.Hours.WorkBegin, end)
	}
}

// IsNoiseRestricted reports whether visiting the building right now (or at
// the projected arrival, when a journey from origin is under way) would
// violate quiet hours. Only leisure commercial buildings flagged by the
// noise policy are ever restricted, and only at night.
func (p Policy) IsNoiseRestricted(id, origin building.ID, travelTime float64) bool {
	info, err := p.Buildings.Info(id)
	if err != nil {
		return false
	}
	if info.Category.SubService != building.SubServiceCommercialLeisure {
		return false
	}
	if !info.NoiseRestricted {
		return false
	}
	h := simtime.HourOf(p.Clock.Now())
	if p.isNight(h) {
		return true
	}
	if origin != 0 && travelTime > 0 {
		return p.isNight(simtime.NormalizeHour(h + travelTime))
	}
	return false
}

// IsEntertainmentTarget reports whether the building qualifies as a leisure
// destination right now.
func (p Policy) IsEntertainmentTarget(id building.ID) bool {
	info, err := p.Buildings.Info(id)
	if err != nil || !info.Active {
		return false
	}
	if info.Category.Service == building.ServiceMonument && !info.RealUnique {
		return false
	}
	if nameDenied(info.Name) {
		return false
	}
	return p.IsBuildingWorking(id)
}

// IsShoppingTarget reports whether the building can receive shoppers right
// now.
func (p Policy) IsShoppingTarget(id building.ID) bool {
	info, err := p.Buildings.Info(id)
	if err != nil || !info.Active {
		return false
	}
	if info.Category.Service != building.ServiceCommercial {
		return false
	}
	if nameDenied(info.Name) {
		return false
	}
	return p.IsBuildingWorking(id)
}

func (p Policy) workforcePresent(info ports.BuildingInfo) bool {
	if !p.Cfg.Quotas.WorkforceMatters {
		return true
	}
	return info.WorkerCount > 0
}

func (p Policy) extendedAnchor(cat building.Category) float64 {
	if cat.IsEducation() {
		return p.Cfg.Hours.SchoolBegin
	}
	return p.Cfg.Hours.WakeUp
}

func (p Policy) isNight(h float64) bool {
	return simtime.IsNightHour(h, p.Cfg.Hours.GoToSleep, p.Cfg.Hours.WakeUp)
}

func (p Policy) isNightNow() bool {
	return p.isNight(simtime.HourOf(p.Clock.Now()))
}

func nameDenied(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, part := range deniedVisitNames {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
