package behavior

import "citypulse/internal/domain/citizen"

// StandardSpareTime is the default spare-time strategy: fixed per-age chance
// tables, with night workers half as likely to go out relaxing since their
// free hours fall when little is open.
type StandardSpareTime struct{}

// BeginNewDay resets per-day scheduling state. The standard strategy keeps
// none between days.
func (StandardSpareTime) BeginNewDay() {}

// ShoppingChance returns the percent chance of a shopping trip for the age
// group.
func (StandardSpareTime) ShoppingChance(age citizen.Age) uint32 {
	return shoppingChanceFor(age)
}

// RelaxingChance returns the percent chance of a leisure trip for the age
// group and shift.
func (StandardSpareTime) RelaxingChance(age citizen.Age, shift citizen.WorkShift) uint32 {
	chance := relaxingChanceFor(age)
	if shift == citizen.ShiftNight || shift == citizen.ShiftContinuousNight {
		chance /= 2
	}
	return chance
}

// BusinessChance returns the percent chance of a daytime errand for the age
// group.
func (StandardSpareTime) BusinessChance(age citizen.Age) uint32 {
	switch age {
	case citizen.AgeYoung:
		return BusinessChanceYoung
	case citizen.AgeAdult:
		return BusinessChanceAdult
	default:
		return 0
	}
}
