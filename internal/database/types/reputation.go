package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// ErrEventNotFound is returned when a reputation event lookup yields no row.
var ErrEventNotFound = errors.New("reputation event not found")

// ReputationType identifies whether an event raises or lowers a member's score.
type ReputationType string

const (
	ReputationTypePositive ReputationType = "positive"
	ReputationTypeNegative ReputationType = "negative"
)

// ReputationEvent represents one recorded +rep or -rep action between a giver
// and a target. Rows are never updated after insertion, only deleted.
type ReputationEvent struct {
	bun.BaseModel `bun:"table:reputations,alias:r"`

	ID        int64          `bun:",pk,autoincrement"`                  // Unique numeric identifier
	TargetID  uint64         `bun:",notnull"`                           // Discord ID of the member being rated
	GiverID   uint64         `bun:",notnull"`                           // Discord ID of the member who rated
	Type      ReputationType `bun:",notnull"`                           // Whether the event is positive or negative
	Reason    string         `bun:",nullzero"`                          // Optional free-text reason
	CreatedAt time.Time      `bun:",notnull,default:current_timestamp"` // When the event was recorded
}

// ReputationAggregate holds the derived score for a target. It is recomputed
// on demand from the event rows and never stored.
type ReputationAggregate struct {
	Positive int64 `bun:"positive"` // Count of positive events
	Negative int64 `bun:"negative"` // Count of negative events
}

// Net returns the net score used for role eligibility checks.
func (a *ReputationAggregate) Net() int64 {
	return a.Positive - a.Negative
}
