package cooldown

import (
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	window := 2 * time.Minute
	base := time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC)
	userID := snowflake.ID(123456789)

	t.Run("unknown member is not on cooldown", func(t *testing.T) {
		tracker := NewTracker(window)
		onCooldown, remaining := tracker.IsOnCooldown(userID, base)
		assert.False(t, onCooldown)
		assert.Zero(t, remaining)
	})

	t.Run("action inside window is rejected with remaining time", func(t *testing.T) {
		tracker := NewTracker(window)
		tracker.RecordAction(userID, base)

		onCooldown, remaining := tracker.IsOnCooldown(userID, base.Add(30*time.Second))
		assert.True(t, onCooldown)
		assert.Equal(t, 90*time.Second, remaining)
	})

	t.Run("action after window elapses is allowed", func(t *testing.T) {
		tracker := NewTracker(window)
		tracker.RecordAction(userID, base)

		onCooldown, remaining := tracker.IsOnCooldown(userID, base.Add(window))
		assert.False(t, onCooldown)
		assert.Zero(t, remaining)
	})

	t.Run("recording again overwrites the last action time", func(t *testing.T) {
		tracker := NewTracker(window)
		tracker.RecordAction(userID, base)
		tracker.RecordAction(userID, base.Add(time.Minute))

		onCooldown, remaining := tracker.IsOnCooldown(userID, base.Add(90*time.Second))
		assert.True(t, onCooldown)
		assert.Equal(t, 90*time.Second, remaining)
	})

	t.Run("members are tracked independently", func(t *testing.T) {
		tracker := NewTracker(window)
		tracker.RecordAction(userID, base)

		onCooldown, _ := tracker.IsOnCooldown(snowflake.ID(987654321), base.Add(time.Second))
		assert.False(t, onCooldown)
	})
}

func TestTrackerConcurrent(t *testing.T) {
	tracker := NewTracker(2 * time.Minute)
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)

		userID := snowflake.ID(i % 10)

		go func() {
			defer wg.Done()
			tracker.RecordAction(userID, now)
		}()

		go func() {
			defer wg.Done()
			tracker.IsOnCooldown(userID, now)
		}()
	}

	wg.Wait()
}
