package bot

import "sync"

type actionKind string

const (
	actionSet    actionKind = "set"
	actionChange actionKind = "change"
	actionRemove actionKind = "remove"
)

// pendingAction records an in-progress configuration command awaiting its
// target channel.
type pendingAction struct {
	kind      actionKind
	signature string
}

// pendingTracker holds at most one pending action per user. A later command
// overwrites an earlier one; there is no queueing and no timeout, so an entry
// lives until consumed or the process restarts.
type pendingTracker struct {
	mu     sync.Mutex
	byUser map[int64]pendingAction
}

func newPendingTracker() *pendingTracker {
	return &pendingTracker{byUser: make(map[int64]pendingAction)}
}

func (t *pendingTracker) Begin(userID int64, action pendingAction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.byUser[userID] = action
}

func (t *pendingTracker) Get(userID int64) (pendingAction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	action, ok := t.byUser[userID]

	return action, ok
}

func (t *pendingTracker) Clear(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.byUser, userID)
}
