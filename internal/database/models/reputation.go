package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reputo/reputo/internal/database/dbretry"
	"github.com/reputo/reputo/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReputationModel handles database operations for reputation events.
type ReputationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReputation creates a new reputation model.
func NewReputation(db *bun.DB, logger *zap.Logger) *ReputationModel {
	return &ReputationModel{
		db:     db,
		logger: logger.Named("db_reputation"),
	}
}

// GetAggregate counts positive and negative events for a target.
// A target with no events yields a zero aggregate.
func (m *ReputationModel) GetAggregate(ctx context.Context, targetID uint64) (*types.ReputationAggregate, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ReputationAggregate, error) {
		var agg types.ReputationAggregate

		err := m.db.NewSelect().
			Model((*types.ReputationEvent)(nil)).
			ColumnExpr("count(*) FILTER (WHERE type = ?) AS positive", types.ReputationTypePositive).
			ColumnExpr("count(*) FILTER (WHERE type = ?) AS negative", types.ReputationTypeNegative).
			Where("target_id = ?", targetID).
			Scan(ctx, &agg)
		if err != nil {
			return nil, fmt.Errorf("failed to get reputation aggregate: %w", err)
		}

		return &agg, nil
	})
}

// HasExistingVote checks whether any event exists for the given target/giver pair.
func (m *ReputationModel) HasExistingVote(ctx context.Context, targetID, giverID uint64) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		exists, err := m.db.NewSelect().
			Model((*types.ReputationEvent)(nil)).
			Where("target_id = ?", targetID).
			Where("giver_id = ?", giverID).
			Exists(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check existing vote: %w", err)
		}

		return exists, nil
	})
}

// InsertEvent appends one reputation event and returns its assigned ID.
func (m *ReputationModel) InsertEvent(ctx context.Context, event *types.ReputationEvent) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		_, err := m.db.NewInsert().
			Model(event).
			Returning("id").
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to insert reputation event: %w", err)
		}

		return event.ID, nil
	})
}

// GetEventsForTarget retrieves all events for a target in creation order.
func (m *ReputationModel) GetEventsForTarget(ctx context.Context, targetID uint64) ([]*types.ReputationEvent, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ReputationEvent, error) {
		var events []*types.ReputationEvent

		err := m.db.NewSelect().
			Model(&events).
			Where("target_id = ?", targetID).
			Order("id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get reputation events: %w", err)
		}

		return events, nil
	})
}

// DeleteEvent removes one event by ID and returns the affected target ID so
// the caller can refresh that member's display state. Returns
// types.ErrEventNotFound if no such event exists.
func (m *ReputationModel) DeleteEvent(ctx context.Context, id int64) (uint64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (uint64, error) {
		var targetID uint64

		err := m.db.NewSelect().
			Model((*types.ReputationEvent)(nil)).
			Column("target_id").
			Where("id = ?", id).
			Scan(ctx, &targetID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, types.ErrEventNotFound
			}

			return 0, fmt.Errorf("failed to look up reputation event: %w", err)
		}

		_, err = m.db.NewDelete().
			Model((*types.ReputationEvent)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to delete reputation event: %w", err)
		}

		return targetID, nil
	})
}

// DeleteAllForTarget removes every event for a target and returns how many
// rows were deleted.
func (m *ReputationModel) DeleteAllForTarget(ctx context.Context, targetID uint64) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		res, err := m.db.NewDelete().
			Model((*types.ReputationEvent)(nil)).
			Where("target_id = ?", targetID).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to delete reputation events: %w", err)
		}

		count, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}

		m.logger.Debug("Deleted reputation events",
			zap.Uint64("target_id", targetID),
			zap.Int64("count", count))

		return count, nil
	})
}
