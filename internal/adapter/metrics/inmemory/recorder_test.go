package inmemory

import (
	"testing"

	"citypulse/internal/domain/citizen"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordTransition(citizen.StateAtWork)
	r.RecordTransition(citizen.StateAtWork)
	r.RecordTransition(citizen.StateShopping)
	r.RecordMoveFailure()
	r.RecordRedirect()

	snap := r.Snapshot()
	if snap.TransitionTotal != 3 {
		t.Fatalf("transition total = %d, want 3", snap.TransitionTotal)
	}
	if snap.ByState["at_work"] != 2 || snap.ByState["shopping"] != 1 {
		t.Fatalf("by-state counts wrong: %v", snap.ByState)
	}
	if snap.MoveFailures != 1 || snap.Redirects != 1 {
		t.Fatalf("failure counters wrong: %+v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordTransition(citizen.StateAtHome)
	snap := r.Snapshot()
	snap.ByState["at_home"] = 99
	if r.Snapshot().ByState["at_home"] != 1 {
		t.Fatalf("snapshot leaked the internal map")
	}
}
