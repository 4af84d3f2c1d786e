package reputation

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/reputo/reputo/internal/bot/core/cooldown"
	"github.com/reputo/reputo/internal/database/types"
	"github.com/reputo/reputo/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore is an in-memory ReputationStore for handler tests.
type memoryStore struct {
	nextID int64
	events map[int64]*types.ReputationEvent
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID: 1,
		events: make(map[int64]*types.ReputationEvent),
	}
}

func (s *memoryStore) GetAggregate(_ context.Context, targetID uint64) (*types.ReputationAggregate, error) {
	var agg types.ReputationAggregate

	for _, e := range s.events {
		if e.TargetID != targetID {
			continue
		}

		if e.Type == types.ReputationTypePositive {
			agg.Positive++
		} else {
			agg.Negative++
		}
	}

	return &agg, nil
}

func (s *memoryStore) HasExistingVote(_ context.Context, targetID, giverID uint64) (bool, error) {
	for _, e := range s.events {
		if e.TargetID == targetID && e.GiverID == giverID {
			return true, nil
		}
	}

	return false, nil
}

func (s *memoryStore) InsertEvent(_ context.Context, event *types.ReputationEvent) (int64, error) {
	event.ID = s.nextID
	event.CreatedAt = time.Now()
	s.events[event.ID] = event
	s.nextID++

	return event.ID, nil
}

func (s *memoryStore) GetEventsForTarget(_ context.Context, targetID uint64) ([]*types.ReputationEvent, error) {
	var result []*types.ReputationEvent

	for _, e := range s.events {
		if e.TargetID == targetID {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (s *memoryStore) DeleteEvent(_ context.Context, id int64) (uint64, error) {
	event, ok := s.events[id]
	if !ok {
		return 0, types.ErrEventNotFound
	}

	delete(s.events, id)

	return event.TargetID, nil
}

func (s *memoryStore) DeleteAllForTarget(_ context.Context, targetID uint64) (int64, error) {
	var count int64

	for id, e := range s.events {
		if e.TargetID == targetID {
			delete(s.events, id)
			count++
		}
	}

	return count, nil
}

const testCooldownWindow = 2 * time.Minute

func newTestHandler(store ReputationStore) *Handler {
	cfg := &config.Reputation{
		CooldownSeconds:  config.DefaultCooldownSeconds,
		TrustedThreshold: config.DefaultTrustedThreshold,
		TrustedRoleName:  config.DefaultTrustedRoleName,
	}

	return New(store, cooldown.NewTracker(testCooldownWindow), cfg, zap.NewNop())
}

func TestValidateVote(t *testing.T) {
	ctx := context.Background()
	giver := snowflake.ID(100)
	target := snowflake.ID(200)
	base := time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC)

	t.Run("first vote passes and starts the cooldown", func(t *testing.T) {
		h := newTestHandler(newMemoryStore())

		rejection, err := h.validateVote(ctx, giver, target, base)
		require.NoError(t, err)
		assert.Empty(t, rejection)
	})

	t.Run("second vote inside the window is rejected with remaining seconds", func(t *testing.T) {
		h := newTestHandler(newMemoryStore())

		rejection, err := h.validateVote(ctx, giver, target, base)
		require.NoError(t, err)
		require.Empty(t, rejection)

		rejection, err = h.validateVote(ctx, giver, target, base.Add(30*time.Second))
		require.NoError(t, err)
		assert.Equal(t, "You are on cooldown. Wait 90s before repping again.", rejection)
	})

	t.Run("vote after the window elapses passes", func(t *testing.T) {
		h := newTestHandler(newMemoryStore())

		rejection, err := h.validateVote(ctx, giver, target, base)
		require.NoError(t, err)
		require.Empty(t, rejection)

		rejection, err = h.validateVote(ctx, giver, snowflake.ID(201), base.Add(testCooldownWindow))
		require.NoError(t, err)
		assert.Empty(t, rejection)
	})

	t.Run("existing vote for the pair is rejected", func(t *testing.T) {
		store := newMemoryStore()

		_, err := store.InsertEvent(ctx, &types.ReputationEvent{
			TargetID: uint64(target),
			GiverID:  uint64(giver),
			Type:     types.ReputationTypePositive,
		})
		require.NoError(t, err)

		h := newTestHandler(store)

		rejection, err := h.validateVote(ctx, giver, target, base)
		require.NoError(t, err)
		assert.Equal(t, "You have already repped this user.", rejection)
	})

	t.Run("rejected duplicate still consumed the cooldown", func(t *testing.T) {
		store := newMemoryStore()

		_, err := store.InsertEvent(ctx, &types.ReputationEvent{
			TargetID: uint64(target),
			GiverID:  uint64(giver),
			Type:     types.ReputationTypePositive,
		})
		require.NoError(t, err)

		h := newTestHandler(store)

		_, err = h.validateVote(ctx, giver, target, base)
		require.NoError(t, err)

		rejection, err := h.validateVote(ctx, giver, snowflake.ID(202), base.Add(time.Second))
		require.NoError(t, err)
		assert.Contains(t, rejection, "on cooldown")
	})
}
