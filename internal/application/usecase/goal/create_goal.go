// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	Type         entity.GoalType
	TargetAmount decimal.Decimal
	TargetDate   time.Time
	Priority     int
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"unknown goal type",
			domainerror.ErrInvalidGoalType,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be positive",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if input.Priority < entity.GoalPriorityHighest || input.Priority > entity.GoalPriorityLowest {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPriority,
			"priority must be between 1 and 5",
			domainerror.ErrInvalidGoalPriority,
		)
	}
	if !input.TargetDate.After(time.Now().UTC()) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetDate,
			"target date must be in the future",
			domainerror.ErrInvalidTargetDate,
		)
	}

	goal := entity.NewGoal(input.UserID, input.Name, input.Type, input.TargetAmount, input.TargetDate, input.Priority)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
