package ports

import (
	"context"
	"time"

	"citypulse/internal/domain/citizen"
)

// EventSink receives committed schedule transitions. Publish errors are
// logged, never propagated into the tick.
type EventSink interface {
	PublishTransition(ctx context.Context, id citizen.ID, from, to citizen.ResidentState, at time.Time) error
}
