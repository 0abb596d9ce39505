package behavior

import "citypulse/internal/domain/citizen"

// Spare-time chance tables, in percent. Rolled per decision against the
// simulation RNG.
const (
	ShoppingChanceChild  = 30
	ShoppingChanceTeen   = 50
	ShoppingChanceYoung  = 60
	ShoppingChanceAdult  = 50
	ShoppingChanceSenior = 40

	RelaxingChanceChild  = 60
	RelaxingChanceTeen   = 70
	RelaxingChanceYoung  = 60
	RelaxingChanceAdult  = 40
	RelaxingChanceSenior = 50

	BusinessChanceYoung = 15
	BusinessChanceAdult = 20

	// NightClassStartHour and NightClassEndHour bound university evening
	// classes.
	NightClassStartHour = 18.0
	NightClassEndHour   = 23.0

	// ContinuousDayStartHour bounds the single-shift continuous window.
	ContinuousDayStartHour = 8.0
	ContinuousDayEndHour   = 20.0

	// ExtendedShiftLeadHours is how much earlier an extended first shift
	// starts relative to its normal begin hour.
	ExtendedShiftLeadHours = 2.0
)

func shoppingChanceFor(age citizen.Age) uint32 {
	switch age {
	case citizen.AgeChild:
		return ShoppingChanceChild
	case citizen.AgeTeen:
		return ShoppingChanceTeen
	case citizen.AgeYoung:
		return ShoppingChanceYoung
	case citizen.AgeAdult:
		return ShoppingChanceAdult
	default:
		return ShoppingChanceSenior
	}
}

func relaxingChanceFor(age citizen.Age) uint32 {
	switch age {
	case citizen.AgeChild:
		return RelaxingChanceChild
	case citizen.AgeTeen:
		return RelaxingChanceTeen
	case citizen.AgeYoung:
		return RelaxingChanceYoung
	case citizen.AgeAdult:
		return RelaxingChanceAdult
	default:
		return RelaxingChanceSenior
	}
}
