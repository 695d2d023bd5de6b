// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/domain/entity"
)

// TransactionFilter bounds a transaction listing. The engine caller is
// responsible for capping Limit so the fetched window stays bounded.
type TransactionFilter struct {
	AccountID *uuid.UUID
	Category  *entity.TransactionCategory
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUserID retrieves transactions for a user ordered by date, most
	// recent first, along with the total count before pagination.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	// Delete removes a transaction from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
