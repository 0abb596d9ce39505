package inmemory

import (
	"sync"

	"citypulse/internal/domain/citizen"
)

// Snapshot is the KPI view served by the ops endpoint.
type Snapshot struct {
	TransitionTotal uint64            `json:"transition_total"`
	MoveFailures    uint64            `json:"move_failures"`
	Redirects       uint64            `json:"redirects"`
	ByState         map[string]uint64 `json:"by_state"`
}

// Recorder counts scheduling outcomes in process memory.
type Recorder struct {
	mu          sync.Mutex
	transitions uint64
	moveFails   uint64
	redirects   uint64
	byState     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byState: map[string]uint64{},
	}
}

func (r *Recorder) RecordTransition(state citizen.ResidentState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions++
	r.byState[state.String()]++
}

func (r *Recorder) RecordMoveFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moveFails++
}

func (r *Recorder) RecordRedirect() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TransitionTotal: r.transitions,
		MoveFailures:    r.moveFails,
		Redirects:       r.redirects,
		ByState:         make(map[string]uint64, len(r.byState)),
	}
	for k, v := range r.byState {
		out.ByState[k] = v
	}
	return out
}
