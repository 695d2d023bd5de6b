package insight

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
)

// DefaultListLimit caps an insight listing when no limit is given.
const DefaultListLimit = 50

// ListInsightsInput represents the input for listing insights.
type ListInsightsInput struct {
	UserID           uuid.UUID
	IncludeDismissed bool
	Limit            int
}

// ListInsightsOutput represents the output of listing insights.
type ListInsightsOutput struct {
	Insights []*entity.Insight
}

// ListInsightsUseCase lists a user's insights, most recent first.
// Dismissed insights are excluded unless explicitly requested.
type ListInsightsUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(insightRepo adapter.InsightRepository) *ListInsightsUseCase {
	return &ListInsightsUseCase{insightRepo: insightRepo}
}

// Execute performs the insight listing.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	insights, err := uc.insightRepo.FindByUserID(ctx, input.UserID, input.IncludeDismissed, limit)
	if err != nil {
		return nil, err
	}

	return &ListInsightsOutput{Insights: insights}, nil
}
