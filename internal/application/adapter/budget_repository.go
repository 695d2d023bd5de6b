// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget with its allocations in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID, including allocations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets for a given user, including allocations.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindActiveByUserID retrieves active budgets for a given user.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Delete removes a budget and its allocations from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
