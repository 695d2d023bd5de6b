package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Nil fields
// are left unchanged.
type UpdateAccountInput struct {
	UserID           uuid.UUID
	AccountID        uuid.UUID
	Name             *string
	CurrentBalance   *decimal.Decimal
	AvailableBalance *decimal.Decimal
	IsActive         *bool
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic, typically balance
// refreshes from the owning institution.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := requireOwnedAccount(ctx, uc.accountRepo, input.UserID, input.AccountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.CurrentBalance != nil {
		account.CurrentBalance = *input.CurrentBalance
	}
	if input.AvailableBalance != nil {
		account.AvailableBalance = *input.AvailableBalance
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return &UpdateAccountOutput{Account: account}, nil
}

// requireOwnedAccount resolves the account and checks ownership.
func requireOwnedAccount(ctx context.Context, repo adapter.AccountRepository, userID, accountID uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if account.UserID != userID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeUnauthorizedAccountAccess,
			"account does not belong to the authenticated user",
			domainerror.ErrUnauthorizedAccountAccess,
		)
	}
	return account, nil
}
