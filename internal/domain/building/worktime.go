package building

// WorkTime describes the operating-hours policy of a single building.
// The zero value means "unconfigured": no night or weekend work, no special
// shifts and zero shifts.
type WorkTime struct {
	WorkAtNight            bool
	WorkAtWeekends         bool
	HasExtendedWorkShift   bool
	HasContinuousWorkShift bool
	WorkShifts             uint8
}

// Randomizer is the slice of the simulation RNG the derivation needs.
// A roll against a percentage quota succeeds when roll < quota.
type Randomizer interface {
	Chance(percent uint32) bool
}

// ShiftQuotas are the configured percentages applied during derivation for
// categories the rule table leaves ambiguous.
type ShiftQuotas struct {
	OpenLowCommercialAtNight    uint32
	OpenLowCommercialAtWeekends uint32
}

// DeriveWorkTime computes the initial WorkTime for a building of the given
// category. Low-density commercial buildings that did not qualify for night
// or weekend work by category get an independent random second chance, and
// commercial buildings with no shift type yet roll 50% for an extended shift,
// else a further 50% for a continuous one.
func DeriveWorkTime(cat Category, quotas ShiftQuotas, rng Randomizer) WorkTime {
	wt := WorkTime{
		WorkAtNight:            cat.worksAtNight(),
		WorkAtWeekends:         cat.worksAtWeekends(),
		HasExtendedWorkShift:   cat.hasExtendedShift(),
		HasContinuousWorkShift: cat.hasContinuousShift(),
	}

	if cat.SubService == SubServiceCommercialLow {
		if !wt.WorkAtNight {
			wt.WorkAtNight = rng.Chance(quotas.OpenLowCommercialAtNight)
		}
		if !wt.WorkAtWeekends {
			wt.WorkAtWeekends = rng.Chance(quotas.OpenLowCommercialAtWeekends)
		}
	}

	if cat.Service == ServiceCommercial && !wt.HasExtendedWorkShift && !wt.HasContinuousWorkShift {
		if rng.Chance(50) {
			wt.HasExtendedWorkShift = true
		} else if rng.Chance(50) {
			wt.HasContinuousWorkShift = true
		}
	}

	wt.WorkShifts = shiftCount(wt)

	if cat.Service == ServiceEducation {
		if cat.Level >= Level3 {
			wt.WorkShifts = 2
		} else {
			wt.WorkShifts = 1
		}
	}

	return wt
}

func shiftCount(wt WorkTime) uint8 {
	switch {
	case wt.HasContinuousWorkShift && !wt.WorkAtNight:
		return 1
	case wt.WorkAtNight && !wt.HasContinuousWorkShift:
		return 3
	case wt.WorkAtNight && wt.HasContinuousWorkShift:
		return 2
	default:
		return 2
	}
}
