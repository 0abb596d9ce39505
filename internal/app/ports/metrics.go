package ports

import "citypulse/internal/domain/citizen"

// TickMetrics records scheduling outcomes for the KPI surface.
type TickMetrics interface {
	RecordTransition(state citizen.ResidentState)
	RecordMoveFailure()
	RecordRedirect()
}
