// Package budget contains budget-related use cases.
package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// Tracker recomputes budget tracking state from scratch on every call.
// It holds no state between invocations; feeding it the same budget and
// transactions always yields the same tracking result.
type Tracker struct{}

// NewTracker creates a new Tracker instance.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Track derives the per-category tracking state for one budget from the
// given transactions. Transactions outside the budget window, pending
// transactions and non-expense transactions are ignored. Spend in
// categories without an allocation is pooled into an unallocated bucket
// when present.
func (t *Tracker) Track(budget *entity.Budget, transactions []*entity.Transaction, now time.Time) (*entity.BudgetTracking, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	windowStart := budget.StartDate
	windowEnd := budget.PeriodEnd()

	spentByCategory := make(map[entity.TransactionCategory]decimal.Decimal)
	totalSpent := decimal.Zero

	for _, tx := range transactions {
		if tx.IsPending || !tx.IsExpense() {
			continue
		}
		if tx.Date.Before(windowStart) || !tx.Date.Before(windowEnd) {
			continue
		}
		spend := tx.Amount.Abs()
		spentByCategory[tx.Category] = spentByCategory[tx.Category].Add(spend)
		totalSpent = totalSpent.Add(spend)
	}

	states := make([]entity.BudgetCategoryState, 0, len(budget.Allocations)+1)
	unallocated := totalSpent

	for _, allocation := range budget.Allocations {
		spent := spentByCategory[allocation.Category]
		unallocated = unallocated.Sub(spent)
		states = append(states, categoryState(allocation.Category, allocation.AllocatedAmount, spent))
	}

	if unallocated.IsPositive() {
		states = append(states, categoryState(entity.UnallocatedCategory, decimal.Zero, unallocated))
	}

	return &entity.BudgetTracking{
		Budget:          budget,
		Categories:      states,
		TotalSpent:      totalSpent,
		RemainingBudget: budget.TotalBudget.Sub(totalSpent),
		DaysRemaining:   daysRemaining(windowEnd, now),
	}, nil
}

func categoryState(category entity.TransactionCategory, allocated, spent decimal.Decimal) entity.BudgetCategoryState {
	percentage := 0.0
	if allocated.IsPositive() {
		percentage = spent.Div(allocated).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return entity.BudgetCategoryState{
		Category:        category,
		AllocatedAmount: allocated,
		SpentAmount:     spent,
		RemainingAmount: allocated.Sub(spent),
		PercentageUsed:  percentage,
		IsOverBudget:    spent.GreaterThan(allocated),
	}
}

func validateBudget(budget *entity.Budget) error {
	if budget.EndDate != nil && budget.EndDate.Before(budget.StartDate) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"budget end date must not be before start date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}

	seen := make(map[entity.TransactionCategory]bool, len(budget.Allocations))
	for _, allocation := range budget.Allocations {
		if allocation.AllocatedAmount.IsNegative() {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeAllocation,
				fmt.Sprintf("allocation for category %s must not be negative", allocation.Category),
				domainerror.ErrNegativeAllocation,
			)
		}
		if seen[allocation.Category] {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateAllocationCategory,
				fmt.Sprintf("category %s appears in more than one allocation", allocation.Category),
				domainerror.ErrDuplicateAllocationCategory,
			)
		}
		seen[allocation.Category] = true
	}

	return nil
}

// daysRemaining counts whole days from now until the window end, floored
// at zero for already-expired windows.
func daysRemaining(windowEnd, now time.Time) int {
	if !now.Before(windowEnd) {
		return 0
	}
	return int(windowEnd.Sub(now).Hours() / 24)
}
