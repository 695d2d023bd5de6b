// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for transaction names.
const MaxNameLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	Amount       decimal.Decimal
	Name         string
	MerchantName string
	Category     entity.TransactionCategory
	Date         time.Time
	IsPending    bool
	IsRecurring  bool
	Frequency    entity.RecurringFrequency
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Name == "" || len(input.Name) > MaxNameLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("transaction name is required and must not exceed %d characters", MaxNameLength),
			domainerror.ErrMissingTransactionFields,
		)
	}
	if input.Amount.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"transaction amount must be non-zero",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.Category != "" && !input.Category.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("unknown transaction category: %s", input.Category),
			domainerror.ErrInvalidCategory,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionAccountNotFound,
			"account not found for transaction",
			domainerror.ErrTransactionAccountNotFound,
		)
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.AccountID,
		input.Amount,
		input.Name,
		input.MerchantName,
		input.Category,
		input.Date,
		input.IsPending,
	)
	tx.IsRecurring = input.IsRecurring
	tx.RecurringFrequency = input.Frequency

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
