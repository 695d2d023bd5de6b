// Package insight contains insight generation and consumption use cases.
package insight

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/domain/entity"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		SpendingWeight:              0.25,
		SavingWeight:                0.25,
		DebtWeight:                  0.20,
		EmergencyFundWeight:         0.15,
		InvestmentWeight:            0.15,
		TargetSavingsRate:           0.20,
		EmergencyFundMonths:         6,
		OverspendRatio:              1.5,
		RecurringAmountTolerance:    0.05,
		SubscriptionAnnualCostFloor: 50,
		GoalRiskMultiple:            2,
		RecommendationThreshold:     60,
		CashFlowWindowDays:          30,
		HistoryWindowDays:           90,
		TransactionWindowLimit:      500,
		MaxInsights:                 20,
	}
}

func emptySummary() *entity.SummaryAggregate {
	return &entity.SummaryAggregate{
		SpendByCategory:        map[entity.TransactionCategory]decimal.Decimal{},
		CategoryMonthlyAverage: map[entity.TransactionCategory]decimal.Decimal{},
	}
}

func merchantCharge(merchant, amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:           uuid.New(),
		Amount:       decimal.RequireFromString(amount),
		MerchantName: merchant,
		Category:     entity.CategoryEntertainment,
		Date:         date,
	}
}

func insightsOfType(insights []*entity.Insight, insightType entity.InsightType) []*entity.Insight {
	var out []*entity.Insight
	for _, ins := range insights {
		if ins.Type == insightType {
			out = append(out, ins)
		}
	}
	return out
}

func TestGenerator_CategoryOverspend(t *testing.T) {
	generator := NewGenerator(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	summary := emptySummary()
	summary.SpendByCategory[entity.CategoryFoodDining] = decimal.RequireFromString("900")
	summary.CategoryMonthlyAverage[entity.CategoryFoodDining] = decimal.RequireFromString("500")
	// Below the overspend ratio, must not fire.
	summary.SpendByCategory[entity.CategoryShopping] = decimal.RequireFromString("550")
	summary.CategoryMonthlyAverage[entity.CategoryShopping] = decimal.RequireFromString("500")

	insights := generator.Generate(userID, summary, nil, nil, nil, now)

	spending := insightsOfType(insights, entity.InsightTypeSpendingPattern)
	if len(spending) != 1 {
		t.Fatalf("expected 1 spending pattern insight, got %d", len(spending))
	}

	ins := spending[0]
	if ins.DataPoints["category"] != "food_dining" {
		t.Errorf("category data point = %q, want food_dining", ins.DataPoints["category"])
	}
	if ins.PotentialSavings == nil || ins.PotentialSavings.String() != "400" {
		t.Errorf("PotentialSavings = %v, want 400", ins.PotentialSavings)
	}
	if len(ins.ActionItems) == 0 {
		t.Error("expected action items")
	}
}

func TestGenerator_RecurringCharges(t *testing.T) {
	generator := NewGenerator(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("monthly subscription detected", func(t *testing.T) {
		transactions := []*entity.Transaction{
			merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -65)),
			merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -35)),
			merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -5)),
		}

		insights := generator.Generate(userID, emptySummary(), transactions, nil, nil, now)

		subs := insightsOfType(insights, entity.InsightTypeSubscriptionReview)
		if len(subs) != 1 {
			t.Fatalf("expected 1 subscription insight, got %d", len(subs))
		}
		if subs[0].DataPoints["frequency"] != "monthly" {
			t.Errorf("frequency = %q, want monthly", subs[0].DataPoints["frequency"])
		}
		if subs[0].PotentialSavings == nil || subs[0].PotentialSavings.String() != "191.88" {
			t.Errorf("PotentialSavings = %v, want 191.88", subs[0].PotentialSavings)
		}
	})

	t.Run("weekly charges detected", func(t *testing.T) {
		transactions := []*entity.Transaction{
			merchantCharge("Gym Pass", "-12.50", now.AddDate(0, 0, -21)),
			merchantCharge("Gym Pass", "-12.50", now.AddDate(0, 0, -14)),
			merchantCharge("Gym Pass", "-12.50", now.AddDate(0, 0, -7)),
		}

		insights := generator.Generate(userID, emptySummary(), transactions, nil, nil, now)

		subs := insightsOfType(insights, entity.InsightTypeSubscriptionReview)
		if len(subs) != 1 {
			t.Fatalf("expected 1 subscription insight, got %d", len(subs))
		}
		if subs[0].DataPoints["frequency"] != "weekly" {
			t.Errorf("frequency = %q, want weekly", subs[0].DataPoints["frequency"])
		}
	})

	t.Run("two occurrences are not recurring", func(t *testing.T) {
		transactions := []*entity.Transaction{
			merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -35)),
			merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -5)),
		}

		insights := generator.Generate(userID, emptySummary(), transactions, nil, nil, now)

		if subs := insightsOfType(insights, entity.InsightTypeSubscriptionReview); len(subs) != 0 {
			t.Errorf("expected no subscription insight, got %d", len(subs))
		}
	})

	t.Run("irregular intervals are not recurring", func(t *testing.T) {
		transactions := []*entity.Transaction{
			merchantCharge("Corner Cafe", "-8.00", now.AddDate(0, 0, -40)),
			merchantCharge("Corner Cafe", "-8.00", now.AddDate(0, 0, -22)),
			merchantCharge("Corner Cafe", "-8.00", now.AddDate(0, 0, -3)),
		}

		insights := generator.Generate(userID, emptySummary(), transactions, nil, nil, now)

		if subs := insightsOfType(insights, entity.InsightTypeSubscriptionReview); len(subs) != 0 {
			t.Errorf("expected no subscription insight, got %d", len(subs))
		}
	})

	t.Run("annualized cost below the floor is ignored", func(t *testing.T) {
		transactions := []*entity.Transaction{
			merchantCharge("Tiny App", "-2.00", now.AddDate(0, 0, -65)),
			merchantCharge("Tiny App", "-2.00", now.AddDate(0, 0, -35)),
			merchantCharge("Tiny App", "-2.00", now.AddDate(0, 0, -5)),
		}

		insights := generator.Generate(userID, emptySummary(), transactions, nil, nil, now)

		if subs := insightsOfType(insights, entity.InsightTypeSubscriptionReview); len(subs) != 0 {
			t.Errorf("expected no subscription insight, got %d", len(subs))
		}
	})
}

func TestGenerator_GoalRisk(t *testing.T) {
	generator := NewGenerator(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	summary := emptySummary()
	summary.AverageMonthlyNetSavings = decimal.RequireFromString("200")

	t.Run("unreachable goal flagged", func(t *testing.T) {
		goal := entity.NewGoal(
			userID,
			"House down payment",
			entity.GoalTypeHomePurchase,
			decimal.RequireFromString("50000"),
			now.AddDate(1, 0, 0),
			1,
		)

		insights := generator.Generate(userID, summary, nil, nil, []*entity.Goal{goal}, now)

		advice := insightsOfType(insights, entity.InsightTypeGoalAdvice)
		if len(advice) != 1 {
			t.Fatalf("expected 1 goal advice insight, got %d", len(advice))
		}
		if advice[0].DataPoints["goal_id"] != goal.ID.String() {
			t.Errorf("goal_id data point = %q, want %s", advice[0].DataPoints["goal_id"], goal.ID)
		}
	})

	t.Run("comfortably on-track goal not flagged", func(t *testing.T) {
		goal := entity.NewGoal(
			userID,
			"Small cushion",
			entity.GoalTypeEmergencyFund,
			decimal.RequireFromString("1200"),
			now.AddDate(1, 0, 0),
			2,
		)

		insights := generator.Generate(userID, summary, nil, nil, []*entity.Goal{goal}, now)

		if advice := insightsOfType(insights, entity.InsightTypeGoalAdvice); len(advice) != 0 {
			t.Errorf("expected no goal advice insight, got %d", len(advice))
		}
	})
}

func TestGenerator_BudgetBreach(t *testing.T) {
	generator := NewGenerator(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	states := []entity.BudgetCategoryState{
		{
			Category:        entity.CategoryFoodDining,
			AllocatedAmount: decimal.RequireFromString("500"),
			SpentAmount:     decimal.RequireFromString("650"),
			PercentageUsed:  130,
			IsOverBudget:    true,
		},
		{
			Category:        entity.CategoryShopping,
			AllocatedAmount: decimal.RequireFromString("300"),
			SpentAmount:     decimal.RequireFromString("100"),
			PercentageUsed:  33,
		},
	}

	insights := generator.Generate(userID, emptySummary(), nil, states, nil, now)

	breaches := insightsOfType(insights, entity.InsightTypeBudgetRecommendation)
	if len(breaches) != 1 {
		t.Fatalf("expected 1 budget insight, got %d", len(breaches))
	}
	if breaches[0].PotentialSavings == nil || breaches[0].PotentialSavings.String() != "150" {
		t.Errorf("PotentialSavings = %v, want 150", breaches[0].PotentialSavings)
	}
}

func TestGenerator_RankingAndTruncation(t *testing.T) {
	cfg := testEngineConfig()
	cfg.MaxInsights = 2
	generator := NewGenerator(cfg)
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	summary := emptySummary()
	// Large overspend promotes to top importance.
	summary.SpendByCategory[entity.CategoryTravel] = decimal.RequireFromString("1600")
	summary.CategoryMonthlyAverage[entity.CategoryTravel] = decimal.RequireFromString("400")
	// Small overspend stays at its base importance.
	summary.SpendByCategory[entity.CategoryEntertainment] = decimal.RequireFromString("170")
	summary.CategoryMonthlyAverage[entity.CategoryEntertainment] = decimal.RequireFromString("100")

	states := []entity.BudgetCategoryState{
		{
			Category:        entity.CategoryFoodDining,
			AllocatedAmount: decimal.RequireFromString("500"),
			SpentAmount:     decimal.RequireFromString("620"),
			PercentageUsed:  124,
			IsOverBudget:    true,
		},
	}

	insights := generator.Generate(userID, summary, nil, states, nil, now)

	if len(insights) != 2 {
		t.Fatalf("expected truncation to 2 insights, got %d", len(insights))
	}
	if insights[0].Type != entity.InsightTypeSpendingPattern {
		t.Errorf("first insight type = %s, want spending_pattern", insights[0].Type)
	}
	if insights[0].Importance > insights[1].Importance {
		t.Error("insights must be ordered by importance")
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	generator := NewGenerator(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	summary := emptySummary()
	summary.SpendByCategory[entity.CategoryFoodDining] = decimal.RequireFromString("900")
	summary.CategoryMonthlyAverage[entity.CategoryFoodDining] = decimal.RequireFromString("500")

	transactions := []*entity.Transaction{
		merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -65)),
		merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -35)),
		merchantCharge("StreamFlix", "-15.99", now.AddDate(0, 0, -5)),
	}

	first := generator.Generate(userID, summary, transactions, nil, nil, now)
	second := generator.Generate(userID, summary, transactions, nil, nil, now)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].DedupeKey() != second[i].DedupeKey() {
			t.Errorf("insight %d differs between runs: %q vs %q", i, first[i].DedupeKey(), second[i].DedupeKey())
		}
	}
}
