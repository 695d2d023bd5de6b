// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period type for a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether the budget period is one of the known periods.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Budget represents a spending budget definition in the FinPulse system.
// Allocations need not sum to TotalBudget; spend in categories without an
// allocation falls into an unallocated bucket during tracking.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Period      BudgetPeriod
	TotalBudget decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	IsActive    bool
	Allocations []BudgetAllocation
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// BudgetAllocation represents the amount allocated to one category within
// a budget.
type BudgetAllocation struct {
	ID              uuid.UUID
	BudgetID        uuid.UUID
	Category        TransactionCategory
	AllocatedAmount decimal.Decimal
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	name string,
	period BudgetPeriod,
	totalBudget decimal.Decimal,
	startDate time.Time,
	endDate *time.Time,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Period:      period,
		TotalBudget: totalBudget,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// PeriodEnd returns the effective end of the budget window: the explicit
// end date when set, otherwise one period after the start date.
func (b *Budget) PeriodEnd() time.Time {
	if b.EndDate != nil {
		return *b.EndDate
	}
	switch b.Period {
	case BudgetPeriodWeekly:
		return b.StartDate.AddDate(0, 0, 7)
	case BudgetPeriodYearly:
		return b.StartDate.AddDate(1, 0, 0)
	default:
		return b.StartDate.AddDate(0, 1, 0)
	}
}

// BudgetCategoryState is the derived tracking state for one category
// within a budget. It is recomputed fresh on every tracker invocation and
// never persisted or incrementally patched.
type BudgetCategoryState struct {
	Category        TransactionCategory
	AllocatedAmount decimal.Decimal
	SpentAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	PercentageUsed  float64
	IsOverBudget    bool
}

// UnallocatedCategory labels the catch-all bucket for spend in categories
// without an allocation.
const UnallocatedCategory TransactionCategory = "unallocated"

// BudgetTracking is the full recomputed tracking result for one budget.
type BudgetTracking struct {
	Budget          *Budget
	Categories      []BudgetCategoryState
	TotalSpent      decimal.Decimal
	RemainingBudget decimal.Decimal
	DaysRemaining   int
}
