package noop

import (
	"context"
	"time"

	"citypulse/internal/domain/citizen"
)

// Sink discards all transition events; the default when no broker is
// configured.
type Sink struct{}

func (Sink) PublishTransition(context.Context, citizen.ID, citizen.ResidentState, citizen.ResidentState, time.Time) error {
	return nil
}
