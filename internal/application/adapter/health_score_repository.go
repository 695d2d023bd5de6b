// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/domain/entity"
)

// HealthScoreRepository defines the append-only output sink for health
// scores. Scores are never updated or deleted; the latest score is
// resolved by calculated_at ordering at read time.
type HealthScoreRepository interface {
	// Create persists a new score and updates the owner's denormalized
	// health fields in a single transaction. The call is all-or-nothing.
	Create(ctx context.Context, score *entity.FinancialHealthScore) error

	// FindLatestByUserID retrieves the most recently calculated score.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.FinancialHealthScore, error)

	// FindByUserID retrieves the score history, most recent first.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FinancialHealthScore, error)
}
