// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/domain/entity"
)

// InsightRepository defines the append-only output sink for insights,
// plus the consumer-side read/dismiss mutations.
type InsightRepository interface {
	// CreateBulk persists a batch of insights atomically: either the full
	// batch is stored or none of it is.
	CreateBulk(ctx context.Context, insights []*entity.Insight) error

	// FindByUserID retrieves insights for a user, most recent first.
	FindByUserID(ctx context.Context, userID uuid.UUID, includeDismissed bool, limit int) ([]*entity.Insight, error)

	// FindByID retrieves an insight by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Insight, error)

	// MarkRead sets the read flag on an insight.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Dismiss sets the dismissed flag on an insight.
	Dismiss(ctx context.Context, id uuid.UUID) error
}
