package simtime

import "time"

// HourOf returns the hour of day of t as a float in [0,24).
func HourOf(t time.Time) float64 {
	h, m, s := t.Clock()
	return float64(h) + float64(m)/60 + float64(s)/3600
}

// DurationFromHours converts a fractional hour count into a time.Duration.
func DurationFromHours(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// NormalizeHour maps any hour value into [0,24), adding or removing whole
// days as needed. Shift arithmetic routinely produces hours like 25.5 or -1.
func NormalizeHour(hour float64) float64 {
	for hour < 0 {
		hour += 24
	}
	for hour >= 24 {
		hour -= 24
	}
	return hour
}

// FutureHour returns the next absolute time at the given hour of day,
// never before now. An hour equal to the current one resolves to now.
func FutureHour(now time.Time, hour float64) time.Time {
	hour = NormalizeHour(hour)
	y, mo, d := now.Date()
	target := time.Date(y, mo, d, 0, 0, 0, 0, now.Location()).Add(DurationFromHours(hour))
	if target.Before(now) {
		target = target.Add(24 * time.Hour)
	}
	return target
}

// HourInWindow reports whether hour h falls inside the [start,end) window.
// start == end means the window covers the whole day; start > end means the
// window wraps past midnight, in which case h matches when h >= start or
// h < end.
func HourInWindow(h, start, end float64) bool {
	switch {
	case start == end:
		return true
	case start < end:
		return start <= h && h < end
	default:
		return h >= start || h < end
	}
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsNightHour reports whether h lies in the configured night window, which
// runs from the go-to-sleep hour to the wake-up hour and wraps midnight.
func IsNightHour(h, sleepHour, wakeUpHour float64) bool {
	return HourInWindow(h, sleepHour, wakeUpHour)
}
