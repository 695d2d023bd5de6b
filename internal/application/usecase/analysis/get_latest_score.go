package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// latestScoreCacheTTL bounds staleness between a cached read and the
// invalidation performed by the next scoring pass.
const latestScoreCacheTTL = 5 * time.Minute

// GetLatestScoreInput represents the input for fetching the latest score.
type GetLatestScoreInput struct {
	UserID uuid.UUID
}

// GetLatestScoreOutput represents the output of fetching the latest score.
type GetLatestScoreOutput struct {
	Score *entity.FinancialHealthScore
}

// GetLatestScoreUseCase resolves the most recent health score for a user,
// serving from cache when a fresh copy exists.
type GetLatestScoreUseCase struct {
	scoreRepo adapter.HealthScoreRepository
	cache     adapter.CacheService
}

// NewGetLatestScoreUseCase creates a new GetLatestScoreUseCase instance.
func NewGetLatestScoreUseCase(scoreRepo adapter.HealthScoreRepository, cache adapter.CacheService) *GetLatestScoreUseCase {
	return &GetLatestScoreUseCase{scoreRepo: scoreRepo, cache: cache}
}

// Execute fetches the latest score.
func (uc *GetLatestScoreUseCase) Execute(ctx context.Context, input GetLatestScoreInput) (*GetLatestScoreOutput, error) {
	key := adapter.LatestScoreCacheKey(input.UserID)

	if cached, found, err := uc.cache.Get(ctx, key); err == nil && found {
		var score entity.FinancialHealthScore
		if err := json.Unmarshal(cached, &score); err == nil {
			return &GetLatestScoreOutput{Score: &score}, nil
		}
		slog.Warn("discarding unreadable cached score", "key", key)
	}

	score, err := uc.scoreRepo.FindLatestByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, domainerror.NewEngineError(
			domainerror.ErrCodeScoreNotFound,
			"no health score has been calculated for this user yet",
			domainerror.ErrScoreNotFound,
		)
	}

	if payload, err := json.Marshal(score); err == nil {
		if err := uc.cache.Set(ctx, key, payload, latestScoreCacheTTL); err != nil {
			slog.Warn("failed to cache latest score", "key", key, "error", err)
		}
	}

	return &GetLatestScoreOutput{Score: score}, nil
}
