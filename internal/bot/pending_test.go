package bot

import "testing"

func TestPendingTracker_LaterCommandWins(t *testing.T) {
	tracker := newPendingTracker()

	tracker.Begin(1, pendingAction{kind: actionSet, signature: "A"})
	tracker.Begin(1, pendingAction{kind: actionChange, signature: "B"})

	action, ok := tracker.Get(1)
	if !ok {
		t.Fatal("Get() ok = false, want a pending action")
	}

	if action.kind != actionChange || action.signature != "B" {
		t.Errorf("action = %+v, want kind change signature B", action)
	}
}

func TestPendingTracker_ClearConsumes(t *testing.T) {
	tracker := newPendingTracker()
	tracker.Begin(1, pendingAction{kind: actionRemove})

	tracker.Clear(1)

	if _, ok := tracker.Get(1); ok {
		t.Error("Get() after Clear() returned a pending action")
	}
}

func TestPendingTracker_PerUserIsolation(t *testing.T) {
	tracker := newPendingTracker()

	tracker.Begin(1, pendingAction{kind: actionSet, signature: "A"})
	tracker.Begin(2, pendingAction{kind: actionRemove})

	tracker.Clear(1)

	if _, ok := tracker.Get(1); ok {
		t.Error("user 1 still has a pending action after Clear")
	}

	action, ok := tracker.Get(2)
	if !ok || action.kind != actionRemove {
		t.Errorf("user 2 action = %+v ok=%v, want remove", action, ok)
	}
}
