// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID           uuid.UUID
	InstitutionName  string
	Name             string
	Type             entity.AccountType
	CurrentBalance   decimal.Decimal
	AvailableBalance decimal.Decimal
	CurrencyCode     string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountFields,
			"account name is required",
			domainerror.ErrMissingAccountFields,
		)
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be checking, savings, credit, investment, loan or mortgage",
			domainerror.ErrInvalidAccountType,
		)
	}

	account := entity.NewAccount(
		input.UserID,
		input.InstitutionName,
		input.Name,
		input.Type,
		input.CurrentBalance,
		input.AvailableBalance,
		input.CurrencyCode,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return &CreateAccountOutput{Account: account}, nil
}
