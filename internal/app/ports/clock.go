package ports

import "time"

// TimeProvider supplies the current simulated time. Hour-of-day, weekday and
// night-time are derived from it with the simtime helpers.
type TimeProvider interface {
	Now() time.Time
}
