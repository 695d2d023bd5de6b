package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of listing accounts, with
// balance totals computed over the listed accounts.
type ListAccountsOutput struct {
	Accounts     []*entity.Account
	TotalBalance decimal.Decimal
	NetWorth     decimal.Decimal
}

// ListAccountsUseCase lists a user's active accounts.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute performs the account listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	totalBalance := decimal.Zero
	netWorth := decimal.Zero
	for _, account := range accounts {
		totalBalance = totalBalance.Add(account.CurrentBalance)
		netWorth = netWorth.Add(account.EquityContribution())
	}

	return &ListAccountsOutput{
		Accounts:     accounts,
		TotalBalance: totalBalance,
		NetWorth:     netWorth,
	}, nil
}
