// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCategory represents the fixed category enumeration for
// transactions. Unknown values are rejected at the boundary; the default
// is CategoryOther.
type TransactionCategory string

const (
	CategoryFoodDining     TransactionCategory = "food_dining"
	CategoryShopping       TransactionCategory = "shopping"
	CategoryEntertainment  TransactionCategory = "entertainment"
	CategoryTransportation TransactionCategory = "transportation"
	CategoryBillsUtilities TransactionCategory = "bills_utilities"
	CategoryHealthcare     TransactionCategory = "healthcare"
	CategoryTravel         TransactionCategory = "travel"
	CategoryIncome         TransactionCategory = "income"
	CategoryTransfer       TransactionCategory = "transfer"
	CategoryOther          TransactionCategory = "other"
)

// AllCategories lists every valid transaction category.
var AllCategories = []TransactionCategory{
	CategoryFoodDining,
	CategoryShopping,
	CategoryEntertainment,
	CategoryTransportation,
	CategoryBillsUtilities,
	CategoryHealthcare,
	CategoryTravel,
	CategoryIncome,
	CategoryTransfer,
	CategoryOther,
}

// IsValid reports whether the category is one of the known categories.
func (c TransactionCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// RecurringFrequency represents how often a recurring transaction repeats.
type RecurringFrequency string

const (
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
)

// Transaction represents a financial transaction in the FinPulse system.
// The amount sign determines classification: positive is income, negative
// is an expense.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	AccountID          uuid.UUID
	Amount             decimal.Decimal
	CurrencyCode       string
	Name               string
	MerchantName       string
	Category           TransactionCategory
	Date               time.Time
	IsPending          bool
	IsRecurring        bool
	RecurringFrequency RecurringFrequency
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	amount decimal.Decimal,
	name string,
	merchantName string,
	category TransactionCategory,
	date time.Time,
	isPending bool,
) *Transaction {
	now := time.Now().UTC()

	if category == "" {
		category = CategoryOther
	}

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		Amount:       amount,
		CurrencyCode: "USD",
		Name:         name,
		MerchantName: merchantName,
		Category:     category,
		Date:         date,
		IsPending:    isPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsIncome reports whether the transaction is an inflow.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction is an outflow.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
