package insight

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
)

// DismissInsightInput represents the input for dismissing an insight.
type DismissInsightInput struct {
	UserID    uuid.UUID
	InsightID uuid.UUID
}

// DismissInsightUseCase hides one of the user's insights. A dismissed
// insight no longer blocks regeneration of an equivalent one.
type DismissInsightUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewDismissInsightUseCase creates a new DismissInsightUseCase instance.
func NewDismissInsightUseCase(insightRepo adapter.InsightRepository) *DismissInsightUseCase {
	return &DismissInsightUseCase{insightRepo: insightRepo}
}

// Execute dismisses the insight.
func (uc *DismissInsightUseCase) Execute(ctx context.Context, input DismissInsightInput) error {
	if err := requireOwnedInsight(ctx, uc.insightRepo, input.UserID, input.InsightID); err != nil {
		return err
	}
	return uc.insightRepo.Dismiss(ctx, input.InsightID)
}
