// Package cooldown tracks when members last performed a rep action so that
// repeat actions inside the cooldown window can be rejected.
package cooldown

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Tracker provides a thread-safe map from member ID to last-action time.
// Entries are never persisted; a process restart resets all cooldowns.
// Administrator exemption is the caller's responsibility.
type Tracker struct {
	mu     sync.Mutex
	last   map[snowflake.ID]time.Time
	window time.Duration
}

// NewTracker creates a tracker with the given cooldown window.
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		last:   make(map[snowflake.ID]time.Time),
		window: window,
	}
}

// IsOnCooldown reports whether the member acted within the window and how
// long they still have to wait.
func (t *Tracker) IsOnCooldown(userID snowflake.ID, now time.Time) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	last, ok := t.last[userID]
	if !ok {
		return false, 0
	}

	elapsed := now.Sub(last)
	if elapsed >= t.window {
		return false, 0
	}

	return true, t.window - elapsed
}

// RecordAction overwrites the member's last-action time.
func (t *Tracker) RecordAction(userID snowflake.ID, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last[userID] = now
}
