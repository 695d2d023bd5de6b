package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// GetBudgetInput represents the input for fetching one budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of fetching one budget with its
// freshly recomputed tracking state.
type GetBudgetOutput struct {
	Tracking *entity.BudgetTracking
}

// GetBudgetUseCase resolves a budget and recomputes its tracking state
// from the transactions in the budget window.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	txRepo     adapter.TransactionRepository
	tracker    *Tracker
	cfg        config.EngineConfig
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, txRepo adapter.TransactionRepository, cfg config.EngineConfig) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
		txRepo:     txRepo,
		tracker:    NewTracker(),
		cfg:        cfg,
	}
}

// Execute fetches the budget and its tracking state.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := requireOwnedBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID)
	if err != nil {
		return nil, err
	}

	start := budget.StartDate
	end := budget.PeriodEnd()
	transactions, _, err := uc.txRepo.FindByUserID(ctx, input.UserID, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
		Limit:     uc.cfg.TransactionWindowLimit,
	})
	if err != nil {
		return nil, err
	}

	tracking, err := uc.tracker.Track(budget, transactions, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{Tracking: tracking}, nil
}

// requireOwnedBudget resolves the budget and checks ownership. A budget
// belonging to another user reports as not found.
func requireOwnedBudget(ctx context.Context, repo adapter.BudgetRepository, userID, budgetID uuid.UUID) (*entity.Budget, error) {
	budget, err := repo.FindByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil || budget.UserID != userID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return budget, nil
}
