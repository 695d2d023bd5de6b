package analysis

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
)

// DefaultHistoryLimit caps a score history listing when no limit is given.
const DefaultHistoryLimit = 30

// GetScoreHistoryInput represents the input for fetching score history.
type GetScoreHistoryInput struct {
	UserID uuid.UUID
	Limit  int
}

// GetScoreHistoryOutput represents the output of fetching score history.
type GetScoreHistoryOutput struct {
	Scores []*entity.FinancialHealthScore
}

// GetScoreHistoryUseCase lists a user's score history, most recent first.
type GetScoreHistoryUseCase struct {
	scoreRepo adapter.HealthScoreRepository
}

// NewGetScoreHistoryUseCase creates a new GetScoreHistoryUseCase instance.
func NewGetScoreHistoryUseCase(scoreRepo adapter.HealthScoreRepository) *GetScoreHistoryUseCase {
	return &GetScoreHistoryUseCase{scoreRepo: scoreRepo}
}

// Execute fetches the score history.
func (uc *GetScoreHistoryUseCase) Execute(ctx context.Context, input GetScoreHistoryInput) (*GetScoreHistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}

	scores, err := uc.scoreRepo.FindByUserID(ctx, input.UserID, limit)
	if err != nil {
		return nil, err
	}

	return &GetScoreHistoryOutput{Scores: scores}, nil
}
