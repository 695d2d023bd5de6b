package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/application/usecase/analysis"
	"github.com/finpulse/backend/internal/application/usecase/budget"
	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

// AnalyzeSpendingPatternsInput represents the input for insight generation.
type AnalyzeSpendingPatternsInput struct {
	UserID uuid.UUID
}

// AnalyzeSpendingPatternsOutput represents the output of insight generation.
type AnalyzeSpendingPatternsOutput struct {
	Insights []*entity.Insight
}

// AnalyzeSpendingPatternsUseCase runs one insight generation pass:
// snapshot, generate, dedupe against stored open insights, persist the
// batch atomically, and queue an alert email when a top-importance
// insight appears.
type AnalyzeSpendingPatternsUseCase struct {
	userRepo    adapter.UserRepository
	accountRepo adapter.AccountRepository
	txRepo      adapter.TransactionRepository
	budgetRepo  adapter.BudgetRepository
	goalRepo    adapter.GoalRepository
	insightRepo adapter.InsightRepository
	emailQueue  adapter.EmailQueueRepository
	cache       adapter.CacheService
	aggregator  *analysis.Aggregator
	generator   *Generator
	tracker     *budget.Tracker
	cfg         config.EngineConfig
}

// NewAnalyzeSpendingPatternsUseCase creates a new AnalyzeSpendingPatternsUseCase instance.
func NewAnalyzeSpendingPatternsUseCase(
	userRepo adapter.UserRepository,
	accountRepo adapter.AccountRepository,
	txRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
	insightRepo adapter.InsightRepository,
	emailQueue adapter.EmailQueueRepository,
	cache adapter.CacheService,
	cfg config.EngineConfig,
) *AnalyzeSpendingPatternsUseCase {
	return &AnalyzeSpendingPatternsUseCase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		budgetRepo:  budgetRepo,
		goalRepo:    goalRepo,
		insightRepo: insightRepo,
		emailQueue:  emailQueue,
		cache:       cache,
		aggregator:  analysis.NewAggregator(cfg),
		generator:   NewGenerator(cfg),
		tracker:     budget.NewTracker(),
		cfg:         cfg,
	}
}

// Execute performs the insight generation pass.
func (uc *AnalyzeSpendingPatternsUseCase) Execute(ctx context.Context, input AnalyzeSpendingPatternsInput) (*AnalyzeSpendingPatternsOutput, error) {
	now := time.Now().UTC()

	start := now.AddDate(0, 0, -uc.cfg.HistoryWindowDays)
	transactions, _, err := uc.txRepo.FindByUserID(ctx, input.UserID, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &now,
		Limit:     uc.cfg.TransactionWindowLimit,
	})
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, domainerror.NewEngineError(
			domainerror.ErrCodeNoTransactions,
			"insight generation requires at least one transaction",
			domainerror.ErrNoTransactions,
		)
	}

	accounts, err := uc.accountRepo.FindByUserID(ctx, input.UserID)
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

	generated := uc.generator.Generate(input.UserID, summary, transactions, budgetStates, goals, now)

	fresh, err := uc.dedupe(ctx, input.UserID, generated)
	if err != nil {
		return nil, err
	}

	if len(fresh) > 0 {
		if err := uc.insightRepo.CreateBulk(ctx, fresh); err != nil {
			return nil, err
		}
		uc.queueAlertEmail(ctx, input.UserID, fresh)
		uc.invalidateCaches(ctx, input.UserID)
	}

	slog.Info("insight generation completed",
		"user_id", input.UserID,
		"generated", len(generated),
		"stored", len(fresh),
	)

	return &AnalyzeSpendingPatternsOutput{Insights: fresh}, nil
}

func (uc *AnalyzeSpendingPatternsUseCase) trackActiveBudgets(ctx context.Context, userID uuid.UUID, transactions []*entity.Transaction, now time.Time) ([]entity.BudgetCategoryState, error) {
	budgets, err := uc.budgetRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var states []entity.BudgetCategoryState
	for _, b := range budgets {
		tracking, err := uc.tracker.Track(b, transactions, now)
		if err != nil {
			slog.Warn("skipping budget during insight generation", "budget_id", b.ID, "error", err)
			continue
		}
		states = append(states, tracking.Categories...)
	}
	return states, nil
}

// dedupe drops generated insights whose dedupe key matches a stored,
// non-dismissed insight. Dismissed insights do not block regeneration.
func (uc *AnalyzeSpendingPatternsUseCase) dedupe(ctx context.Context, userID uuid.UUID, generated []*entity.Insight) ([]*entity.Insight, error) {
	existing, err := uc.insightRepo.FindByUserID(ctx, userID, false, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing))
	for _, ins := range existing {
		seen[ins.DedupeKey()] = true
	}

	fresh := make([]*entity.Insight, 0, len(generated))
	for _, ins := range generated {
		if seen[ins.DedupeKey()] {
			continue
		}
		fresh = append(fresh, ins)
	}
	return fresh, nil
}

// queueAlertEmail enqueues one digest email when the batch contains a
// top-importance insight and the user has alerts enabled. Queue failures
// are logged, not propagated; the insights are already stored.
func (uc *AnalyzeSpendingPatternsUseCase) queueAlertEmail(ctx context.Context, userID uuid.UUID, insights []*entity.Insight) {
	var urgent []*entity.Insight
	for _, ins := range insights {
		if ins.Importance == entity.InsightImportanceHighest {
			urgent = append(urgent, ins)
		}
	}
	if len(urgent) == 0 {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil || !user.InsightAlertsEnabled {
		return
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\nWe found %d new high-priority insight(s) on your finances:\n\n", user.FullName, len(urgent))
	for _, ins := range urgent {
		fmt.Fprintf(&body, "- %s\n  %s\n", ins.Title, ins.Description)
	}
	body.WriteString("\nOpen FinPulse to review the details and suggested actions.\n")

	job := entity.NewEmailJob(
		entity.EmailKindInsightAlert,
		user.Email,
		user.FullName,
		"New financial insights need your attention",
		body.String(),
	)
	if err := uc.emailQueue.Create(ctx, job); err != nil {
		slog.Warn("failed to queue insight alert email", "user_id", userID, "error", err)
	}
}

func (uc *AnalyzeSpendingPatternsUseCase) invalidateCaches(ctx context.Context, userID uuid.UUID) {
	if err := uc.cache.Delete(ctx, adapter.DashboardCacheKey(userID)); err != nil {
		slog.Warn("failed to invalidate dashboard cache", "user_id", userID, "error", err)
	}
}
