package insight

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// MarkInsightReadInput represents the input for marking an insight read.
type MarkInsightReadInput struct {
	UserID    uuid.UUID
	InsightID uuid.UUID
}

// MarkInsightReadUseCase flips the read flag on one of the user's insights.
type MarkInsightReadUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewMarkInsightReadUseCase creates a new MarkInsightReadUseCase instance.
func NewMarkInsightReadUseCase(insightRepo adapter.InsightRepository) *MarkInsightReadUseCase {
	return &MarkInsightReadUseCase{insightRepo: insightRepo}
}

// Execute marks the insight as read.
func (uc *MarkInsightReadUseCase) Execute(ctx context.Context, input MarkInsightReadInput) error {
	if err := requireOwnedInsight(ctx, uc.insightRepo, input.UserID, input.InsightID); err != nil {
		return err
	}
	return uc.insightRepo.MarkRead(ctx, input.InsightID)
}

// requireOwnedInsight resolves the insight and checks ownership.
func requireOwnedInsight(ctx context.Context, repo adapter.InsightRepository, userID, insightID uuid.UUID) error {
	ins, err := repo.FindByID(ctx, insightID)
	if err != nil {
		return err
	}
	if ins == nil {
		return domainerror.NewInsightError(
			domainerror.ErrCodeInsightNotFound,
			"insight not found",
			domainerror.ErrInsightNotFound,
		)
	}
	if ins.UserID != userID {
		return domainerror.NewInsightError(
			domainerror.ErrCodeUnauthorizedInsightAccess,
			"insight does not belong to the authenticated user",
			domainerror.ErrUnauthorizedInsightAccess,
		)
	}
	return nil
}
