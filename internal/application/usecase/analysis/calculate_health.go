package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/application/usecase/budget"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// CalculateHealthInput represents the input for a health score calculation.
type CalculateHealthInput struct {
	UserID uuid.UUID
}

// CalculateHealthOutput represents the output of a health score calculation.
type CalculateHealthOutput struct {
	Score   *entity.FinancialHealthScore
	Summary *entity.SummaryAggregate
}

// CalculateHealthUseCase runs one full scoring pass: it snapshots the
// user's accounts, transactions, budgets and goals, aggregates them,
// scores the result and appends the score to the history. Each run is
// independent; concurrent runs for the same user both persist and the
// later calculated_at wins at read time.
type CalculateHealthUseCase struct {
	accountRepo  adapter.AccountRepository
	txRepo       adapter.TransactionRepository
	budgetRepo   adapter.BudgetRepository
	goalRepo     adapter.GoalRepository
	scoreRepo    adapter.HealthScoreRepository
	cache        adapter.CacheService
	aggregator   *Aggregator
	scorer       *Scorer
	tracker      *budget.Tracker
	cfg          config.EngineConfig
}

// NewCalculateHealthUseCase creates a new CalculateHealthUseCase instance.
func NewCalculateHealthUseCase(
	accountRepo adapter.AccountRepository,
	txRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
	scoreRepo adapter.HealthScoreRepository,
	cache adapter.CacheService,
	cfg config.EngineConfig,
) *CalculateHealthUseCase {
	return &CalculateHealthUseCase{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		budgetRepo:  budgetRepo,
		goalRepo:    goalRepo,
		scoreRepo:   scoreRepo,
		cache:       cache,
		aggregator:  NewAggregator(cfg),
		scorer:      NewScorer(cfg),
		tracker:     budget.NewTracker(),
		cfg:         cfg,
	}
}

// Execute performs the health score calculation and persists the result.
func (uc *CalculateHealthUseCase) Execute(ctx context.Context, input CalculateHealthInput) (*CalculateHealthOutput, error) {
	now := time.Now().UTC()

	accounts, err := uc.accountRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.fetchTransactions(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	summary := uc.aggregator.BuildSummary(accounts, transactions, now)

	budgetStates, err := uc.trackActiveBudgets(ctx, input.UserID, transactions, now)
	if err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	score := uc.scorer.Score(input.UserID, summary, budgetStates, goals, now)

	if err := uc.scoreRepo.Create(ctx, score); err != nil {
		return nil, err
	}

	uc.updateGoalProjections(ctx, goals, summary, now)
	uc.invalidateCaches(ctx, input.UserID)

	slog.Info("health score calculated",
		"user_id", input.UserID,
		"overall_score", score.OverallScore,
		"account_count", summary.AccountCount,
		"transaction_count", summary.WindowedTransactionCount,
	)

	return &CalculateHealthOutput{Score: score, Summary: summary}, nil
}

// fetchTransactions loads the bounded analysis window: the configured
// history window capped at the configured transaction limit.
func (uc *CalculateHealthUseCase) fetchTransactions(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Transaction, error) {
	start := now.AddDate(0, 0, -uc.cfg.HistoryWindowDays)
	if !start.Before(now) {
		return nil, domainerror.NewEngineError(
			domainerror.ErrCodeInvalidAnalysisWindow,
			"analysis window start must be before its end",
			domainerror.ErrInvalidAnalysisWindow,
		)
	}

	transactions, _, err := uc.txRepo.FindByUserID(ctx, userID, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &now,
		Limit:     uc.cfg.TransactionWindowLimit,
	})
	return transactions, err
}

// trackActiveBudgets recomputes tracking for every active budget and
// flattens the per-category states for the scorer. A single invalid
// budget skips tracking for that budget only.
func (uc *CalculateHealthUseCase) trackActiveBudgets(ctx context.Context, userID uuid.UUID, transactions []*entity.Transaction, now time.Time) ([]entity.BudgetCategoryState, error) {
	budgets, err := uc.budgetRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var states []entity.BudgetCategoryState
	for _, b := range budgets {
		tracking, err := uc.tracker.Track(b, transactions, now)
		if err != nil {
			slog.Warn("skipping budget during scoring", "budget_id", b.ID, "error", err)
			continue
		}
		states = append(states, tracking.Categories...)
	}
	return states, nil
}

// updateGoalProjections refreshes each active goal's success probability
// and recommended contribution from the latest savings averages. Failures
// here do not fail the scoring pass.
func (uc *CalculateHealthUseCase) updateGoalProjections(ctx context.Context, goals []*entity.Goal, summary *entity.SummaryAggregate, now time.Time) {
	avgNetSavings := summary.AverageMonthlyNetSavings.InexactFloat64()

	for _, goal := range goals {
		required := goal.RequiredMonthlyContribution(now)
		requiredFloat := required.InexactFloat64()

		probability := 0.95
		if requiredFloat > 0 {
			probability = clampProbability(avgNetSavings / requiredFloat)
		}

		goal.ProbabilitySuccess = &probability
		goal.RecommendedMonthlyContribution = &required
		goal.UpdatedAt = now

		if err := uc.goalRepo.Update(ctx, goal); err != nil {
			slog.Warn("failed to update goal projection", "goal_id", goal.ID, "error", err)
		}
	}
}

func (uc *CalculateHealthUseCase) invalidateCaches(ctx context.Context, userID uuid.UUID) {
	for _, key := range []string{adapter.DashboardCacheKey(userID), adapter.LatestScoreCacheKey(userID)} {
		if err := uc.cache.Delete(ctx, key); err != nil {
			slog.Warn("failed to invalidate cache", "key", key, "error", err)
		}
	}
}

func clampProbability(value float64) float64 {
	if value < 0.05 {
		return 0.05
	}
	if value > 0.95 {
		return 0.95
	}
	return value
}
