// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the type of financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeMortgage   AccountType = "mortgage"
)

// IsValid reports whether the account type is one of the known types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit,
		AccountTypeInvestment, AccountTypeLoan, AccountTypeMortgage:
		return true
	}
	return false
}

// Account represents a financial account snapshot in the FinPulse system.
type Account struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	InstitutionName  string
	Name             string
	Type             AccountType
	CurrentBalance   decimal.Decimal
	AvailableBalance decimal.Decimal
	CurrencyCode     string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity.
func NewAccount(
	userID uuid.UUID,
	institutionName string,
	name string,
	accountType AccountType,
	currentBalance decimal.Decimal,
	availableBalance decimal.Decimal,
	currencyCode string,
) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:               uuid.New(),
		UserID:           userID,
		InstitutionName:  institutionName,
		Name:             name,
		Type:             accountType,
		CurrentBalance:   currentBalance,
		AvailableBalance: availableBalance,
		CurrencyCode:     currencyCode,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsLiability reports whether the account type represents debt.
func (a *Account) IsLiability() bool {
	switch a.Type {
	case AccountTypeCredit, AccountTypeLoan, AccountTypeMortgage:
		return true
	}
	return false
}

// IsLiquid reports whether the account balance counts toward the
// emergency fund (checking and savings).
func (a *Account) IsLiquid() bool {
	return a.Type == AccountTypeChecking || a.Type == AccountTypeSavings
}

// IsInvestment reports whether the account is an investment account.
func (a *Account) IsInvestment() bool {
	return a.Type == AccountTypeInvestment
}

// EquityContribution returns the account's signed contribution to net
// worth. Liability balances are subtracted by magnitude regardless of the
// sign convention the upstream import used, so a credit card reported as
// either 1200 or -1200 contributes -1200.
func (a *Account) EquityContribution() decimal.Decimal {
	if a.IsLiability() {
		return a.CurrentBalance.Abs().Neg()
	}
	return a.CurrentBalance
}
