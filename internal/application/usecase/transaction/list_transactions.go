package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
)

// Listing bounds.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	Category  *entity.TransactionCategory
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	TotalCount   int64
}

// ListTransactionsUseCase lists a user's transactions, most recent first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	transactions, total, err := uc.transactionRepo.FindByUserID(ctx, input.UserID, adapter.TransactionFilter{
		AccountID: input.AccountID,
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: transactions, TotalCount: total}, nil
}
