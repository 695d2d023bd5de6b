package budget

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

// CreateBudgetAllocationInput is one category allocation in a create request.
type CreateBudgetAllocationInput struct {
	Category        entity.TransactionCategory
	AllocatedAmount decimal.Decimal
}

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	Name        string
	Period      entity.BudgetPeriod
	TotalBudget decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	Allocations []CreateBudgetAllocationInput
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be weekly, monthly or yearly",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if !input.TotalBudget.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTotalBudget,
			"total budget must be positive",
			domainerror.ErrInvalidTotalBudget,
		)
	}

	for _, allocation := range input.Allocations {
		if !allocation.Category.IsValid() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidAllocationCategory,
				fmt.Sprintf("unknown allocation category: %s", allocation.Category),
				domainerror.ErrInvalidAllocationCategory,
			)
		}
	}

	budget := entity.NewBudget(input.UserID, input.Name, input.Period, input.TotalBudget, input.StartDate, input.EndDate)
	for _, allocation := range input.Allocations {
		budget.Allocations = append(budget.Allocations, entity.BudgetAllocation{
			ID:              uuid.New(),
			BudgetID:        budget.ID,
			Category:        allocation.Category,
			AllocatedAmount: allocation.AllocatedAmount,
		})
	}

	// Date range and allocation invariants are shared with tracking.
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
