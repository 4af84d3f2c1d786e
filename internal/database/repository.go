package database

import (
	"github.com/reputo/reputo/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	reputation *models.ReputationModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		reputation: models.NewReputation(db, logger),
	}
}

// Reputation returns the reputation model.
func (r *Repository) Reputation() *models.ReputationModel {
	return r.reputation
}
