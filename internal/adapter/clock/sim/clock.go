package sim

import (
	"time"

	"citypulse/config"
)

// Clock maps wall time onto the simulated calendar: simulated time starts at
// the configured epoch and advances time_scale simulated seconds per wall
// second.
type Clock struct {
	epoch     time.Time
	wallStart time.Time
	scale     float64
	wallNow   func() time.Time
}

func New(cfg config.SimulationConfig) *Clock {
	return newClock(cfg, time.Now)
}

func newClock(cfg config.SimulationConfig, wallNow func() time.Time) *Clock {
	scale := cfg.TimeScale
	if scale <= 0 {
		scale = 1
	}
	epoch := time.Unix(cfg.EpochUnix, 0).UTC()
	return &Clock{
		epoch:     epoch,
		wallStart: wallNow(),
		scale:     scale,
		wallNow:   wallNow,
	}
}

func (c *Clock) Now() time.Time {
	elapsed := c.wallNow().Sub(c.wallStart)
	return c.epoch.Add(time.Duration(float64(elapsed) * c.scale))
}
