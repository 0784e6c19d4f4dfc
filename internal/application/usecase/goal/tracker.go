// Package goal contains savings-goal calculator use cases.
package goal

import (
	"context"
	"sync"
	"time"
)

// submissionState tracks the latest submission for one session.
type submissionState struct {
	seq    uint64
	cancel context.CancelFunc
}

// SubmissionTracker serializes calculator submissions per session. Each new
// submission cancels the session's prior in-flight advisor call and advances
// a sequence number; a completion is only current when its sequence still
// matches. The displayed result therefore always corresponds to the most
// recently submitted query, never just the most recently completed one.
type SubmissionTracker struct {
	mu       sync.Mutex
	sessions map[string]*submissionState
}

// NewSubmissionTracker creates a new SubmissionTracker instance.
func NewSubmissionTracker() *SubmissionTracker {
	return &SubmissionTracker{
		sessions: make(map[string]*submissionState),
	}
}

// Begin registers a new submission for the session: the previous in-flight
// submission (if any) is cancelled, and a derived context with the given
// timeout is returned together with the submission's sequence number.
func (t *SubmissionTracker) Begin(ctx context.Context, session string, timeout time.Duration) (context.Context, context.CancelFunc, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.sessions[session]
	if !ok {
		state = &submissionState{}
		t.sessions[session] = state
	}

	if state.cancel != nil {
		state.cancel()
	}

	state.seq++
	subCtx, cancel := context.WithTimeout(ctx, timeout)
	state.cancel = cancel

	return subCtx, cancel, state.seq
}

// IsCurrent reports whether the submission is still the session's latest.
func (t *SubmissionTracker) IsCurrent(session string, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.sessions[session]
	return ok && state.seq == seq
}

// Finish releases the session's cancel func if the submission is still
// current. Stale submissions must not release the newer one's resources.
func (t *SubmissionTracker) Finish(session string, seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.sessions[session]
	if ok && state.seq == seq {
		state.cancel = nil
	}
}
