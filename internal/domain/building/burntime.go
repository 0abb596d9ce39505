package building

import "time"

// BurnTime records when a building caught fire and how long the fire lasts.
// Duration is in hours.
type BurnTime struct {
	StartDate time.Time
	StartHour float64
	Duration  float64
}

// Expired reports whether the fire has burned long enough to be put out.
func (b BurnTime) Expired(now time.Time) bool {
	if b.StartDate.IsZero() {
		return true
	}
	start := b.StartDate.Add(time.Duration(b.StartHour * float64(time.Hour)))
	return !now.Before(start.Add(time.Duration(b.Duration * float64(time.Hour))))
}
