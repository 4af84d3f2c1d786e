package migrations

import (
	"context"
	"fmt"

	"github.com/reputo/reputo/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*types.ReputationEvent)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create reputations table: %w", err)
		}

		// Profile listings and aggregate counts both filter on target_id.
		_, err = db.NewCreateIndex().
			Model((*types.ReputationEvent)(nil)).
			Index("reputations_target_id_idx").
			Column("target_id").
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create target index: %w", err)
		}

		// The duplicate-vote guard looks up (target_id, giver_id) pairs. This is
		// deliberately a plain index, not a unique constraint: administrators may
		// hold multiple events for the same pair.
		_, err = db.NewCreateIndex().
			Model((*types.ReputationEvent)(nil)).
			Index("reputations_target_giver_idx").
			Column("target_id", "giver_id").
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create pair index: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*types.ReputationEvent)(nil)).
			IfExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop reputations table: %w", err)
		}

		return nil
	})
}
