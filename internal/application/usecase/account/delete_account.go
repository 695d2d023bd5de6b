package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic. Transactions on
// the account are kept; they simply stop contributing to balances.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if _, err := requireOwnedAccount(ctx, uc.accountRepo, input.UserID, input.AccountID); err != nil {
		return err
	}
	return uc.accountRepo.Delete(ctx, input.AccountID)
}
