// Package dashboard assembles the aggregated overview served to clients.
package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/application/usecase/analysis"
	"github.com/finpulse/backend/internal/application/usecase/budget"
	"github.com/finpulse/backend/internal/domain/entity"
)

// recentInsightsLimit bounds the insights section of the dashboard.
const recentInsightsLimit = 5

// GetDashboardInput represents the input for fetching the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// Dashboard is the assembled overview payload. It is JSON-serializable
// as a whole so it can be cached verbatim.
type Dashboard struct {
	TotalBalance    decimal.Decimal               `json:"total_balance"`
	NetWorth        decimal.Decimal               `json:"net_worth"`
	MonthlyIncome   decimal.Decimal               `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal               `json:"monthly_expenses"`
	MonthlyCashFlow decimal.Decimal               `json:"monthly_cash_flow"`
	Accounts        []*entity.Account             `json:"accounts"`
	LatestScore     *entity.FinancialHealthScore  `json:"latest_score,omitempty"`
	RecentInsights  []*entity.Insight             `json:"recent_insights"`
	ActiveBudgets   []*entity.BudgetTracking      `json:"active_budgets"`
	Goals           []*entity.Goal                `json:"goals"`
	GeneratedAt     time.Time                     `json:"generated_at"`
}

// GetDashboardOutput represents the output of fetching the dashboard.
type GetDashboardOutput struct {
	Dashboard *Dashboard
	FromCache bool
}

// GetDashboardUseCase assembles the dashboard from accounts,
// transactions, the latest score, recent insights, tracked budgets and
// goals, serving a cached copy when one is fresh.
type GetDashboardUseCase struct {
	accountRepo adapter.AccountRepository
	txRepo      adapter.TransactionRepository
	budgetRepo  adapter.BudgetRepository
	goalRepo    adapter.GoalRepository
	scoreRepo   adapter.HealthScoreRepository
	insightRepo adapter.InsightRepository
	cache       adapter.CacheService
	cacheTTL    time.Duration
	aggregator  *analysis.Aggregator
	tracker     *budget.Tracker
	cfg         config.EngineConfig
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	accountRepo adapter.AccountRepository,
	txRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
	scoreRepo adapter.HealthScoreRepository,
	insightRepo adapter.InsightRepository,
	cache adapter.CacheService,
	cacheTTL time.Duration,
	cfg config.EngineConfig,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		budgetRepo:  budgetRepo,
		goalRepo:    goalRepo,
		scoreRepo:   scoreRepo,
		insightRepo: insightRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		aggregator:  analysis.NewAggregator(cfg),
		tracker:     budget.NewTracker(),
		cfg:         cfg,
	}
}

// Execute assembles or serves the dashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	key := adapter.DashboardCacheKey(input.UserID)

	if cached, found, err := uc.cache.Get(ctx, key); err == nil && found {
		var dashboard Dashboard
		if err := json.Unmarshal(cached, &dashboard); err == nil {
			return &GetDashboardOutput{Dashboard: &dashboard, FromCache: true}, nil
		}
		slog.Warn("discarding unreadable cached dashboard", "key", key)
	}

	dashboard, err := uc.assemble(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(dashboard); err == nil {
		if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			slog.Warn("failed to cache dashboard", "key", key, "error", err)
		}
	}

	return &GetDashboardOutput{Dashboard: dashboard}, nil
}

func (uc *GetDashboardUseCase) assemble(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	now := time.Now().UTC()

	accounts, err := uc.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := now.AddDate(0, 0, -uc.cfg.HistoryWindowDays)
	transactions, _, err := uc.txRepo.FindByUserID(ctx, userID, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &now,
		Limit:     uc.cfg.TransactionWindowLimit,
	})
	if err != nil {
		return nil, err
	}

	summary := uc.aggregator.BuildSummary(accounts, transactions, now)

	latestScore, err := uc.scoreRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	insights, err := uc.insightRepo.FindByUserID(ctx, userID, false, recentInsightsLimit)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	trackings := make([]*entity.BudgetTracking, 0, len(budgets))
	for _, b := range budgets {
		tracking, err := uc.tracker.Track(b, transactions, now)
		if err != nil {
			slog.Warn("skipping budget on dashboard", "budget_id", b.ID, "error", err)
			continue
		}
		trackings = append(trackings, tracking)
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalBalance:    summary.TotalBalance,
		NetWorth:        summary.NetWorth,
		MonthlyIncome:   summary.MonthlyIncome,
		MonthlyExpenses: summary.MonthlyExpenses,
		MonthlyCashFlow: summary.MonthlyCashFlow,
		Accounts:        accounts,
		LatestScore:     latestScore,
		RecentInsights:  insights,
		ActiveBudgets:   trackings,
		Goals:           goals,
		GeneratedAt:     now,
	}, nil
}
