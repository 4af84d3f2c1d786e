package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// slowQueryThreshold is the latency above which a successful query is logged
// at warn level. Reputation commands reply inline to the triggering message,
// so a slow aggregate or event scan is directly visible to members.
const slowQueryThreshold = 250 * time.Millisecond

// queryHook is a bun.QueryHook that reports query outcomes through zap.
// Lookups that legitimately find no row are routine here (duplicate-vote
// checks, event deletions by ID) and are not treated as failures.
type queryHook struct {
	logger *zap.Logger
}

func newQueryHook(logger *zap.Logger) *queryHook {
	return &queryHook{logger: logger.Named("query")}
}

func (h *queryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery logs the finished query, promoting failures and slow statements
// above the debug noise floor.
func (h *queryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)

	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		h.logger.Error("Query failed",
			zap.String("operation", event.Operation()),
			zap.String("query", event.Query),
			zap.Duration("duration", duration),
			zap.Error(event.Err))
	case duration >= slowQueryThreshold:
		h.logger.Warn("Slow query",
			zap.String("operation", event.Operation()),
			zap.String("query", event.Query),
			zap.Duration("duration", duration))
	default:
		h.logger.Debug("Query executed",
			zap.String("operation", event.Operation()),
			zap.Duration("duration", duration))
	}
}
