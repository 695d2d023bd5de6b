package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/domain/entity"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func baseSummary() *entity.SummaryAggregate {
	return &entity.SummaryAggregate{
		AccountCount:           2,
		TotalAssets:            decimal.RequireFromString("10000"),
		LiquidBalance:          decimal.RequireFromString("6000"),
		MonthlyIncome:          decimal.RequireFromString("5000"),
		MonthlyExpenses:        decimal.RequireFromString("4000"),
		MonthlyCashFlow:        decimal.RequireFromString("1000"),
		AverageMonthlyExpenses: decimal.RequireFromString("4000"),
		SpendByCategory:        map[entity.TransactionCategory]decimal.Decimal{},
		CategoryMonthlyAverage: map[entity.TransactionCategory]decimal.Decimal{},
	}
}

func TestScorer_Score_NoAccounts(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	score := scorer.Score(uuid.New(), &entity.SummaryAggregate{}, nil, nil, now)

	if score.OverallScore != 0 {
		t.Errorf("OverallScore = %f, want 0", score.OverallScore)
	}
	if len(score.Recommendations) != 1 {
		t.Fatalf("expected exactly one recommendation, got %d", len(score.Recommendations))
	}
	if score.CalculatedAt != now {
		t.Errorf("CalculatedAt = %v, want %v", score.CalculatedAt, now)
	}
}

func TestScorer_SavingScore(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		income   string
		cashFlow string
		want     float64
	}{
		{"target rate scores 100", "5000", "1000", 100},
		{"half the target rate scores 50", "5000", "500", 50},
		{"negative cash flow scores 0", "5000", "-200", 0},
		{"above target clamps at 100", "5000", "2500", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := baseSummary()
			summary.MonthlyIncome = decimal.RequireFromString(tt.income)
			summary.MonthlyCashFlow = decimal.RequireFromString(tt.cashFlow)

			score := scorer.Score(uuid.New(), summary, nil, nil, now)

			if !approxEqual(score.SavingScore, tt.want) {
				t.Errorf("SavingScore = %f, want %f", score.SavingScore, tt.want)
			}
		})
	}
}

func TestScorer_DebtScore(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		assets      string
		liabilities string
		want        float64
	}{
		{"no liabilities scores 100", "10000", "0", 100},
		{"quarter ratio scores 75", "10000", "2500", 75},
		{"debt above assets scores 0", "10000", "12000", 0},
		{"no assets with debt scores 0", "0", "500", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := baseSummary()
			summary.TotalAssets = decimal.RequireFromString(tt.assets)
			summary.TotalLiabilities = decimal.RequireFromString(tt.liabilities)

			score := scorer.Score(uuid.New(), summary, nil, nil, now)

			if !approxEqual(score.DebtScore, tt.want) {
				t.Errorf("DebtScore = %f, want %f", score.DebtScore, tt.want)
			}
		})
	}
}

func TestScorer_EmergencyFundScore(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		liquid      string
		avgExpenses string
		want        float64
	}{
		{"six months of expenses scores 100", "24000", "4000", 100},
		{"three months of expenses scores 50", "12000", "4000", 50},
		{"no expenses with a balance scores 100", "5000", "0", 100},
		{"no expenses and no balance is neutral", "0", "0", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := baseSummary()
			summary.LiquidBalance = decimal.RequireFromString(tt.liquid)
			summary.AverageMonthlyExpenses = decimal.RequireFromString(tt.avgExpenses)

			score := scorer.Score(uuid.New(), summary, nil, nil, now)

			if !approxEqual(score.EmergencyFundScore, tt.want) {
				t.Errorf("EmergencyFundScore = %f, want %f", score.EmergencyFundScore, tt.want)
			}
		})
	}
}

func TestScorer_InvestmentScore(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no investment accounts gets the baseline", func(t *testing.T) {
		summary := baseSummary()

		score := scorer.Score(uuid.New(), summary, nil, nil, now)

		if !approxEqual(score.InvestmentScore, 25) {
			t.Errorf("InvestmentScore = %f, want 25", score.InvestmentScore)
		}
	})

	t.Run("half of assets invested", func(t *testing.T) {
		summary := baseSummary()
		summary.InvestmentAccountCount = 1
		summary.InvestmentBalance = decimal.RequireFromString("5000")

		score := scorer.Score(uuid.New(), summary, nil, nil, now)

		if !approxEqual(score.InvestmentScore, 70) {
			t.Errorf("InvestmentScore = %f, want 70", score.InvestmentScore)
		}
	})
}

func TestScorer_SpendingScore(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no budget data gets a neutral baseline", func(t *testing.T) {
		score := scorer.Score(uuid.New(), baseSummary(), nil, nil, now)

		if !approxEqual(score.SpendingScore, 70) {
			t.Errorf("SpendingScore = %f, want 70", score.SpendingScore)
		}
	})

	t.Run("within budget scores 100", func(t *testing.T) {
		states := []entity.BudgetCategoryState{
			{
				Category:        entity.CategoryFoodDining,
				AllocatedAmount: decimal.RequireFromString("500"),
				SpentAmount:     decimal.RequireFromString("300"),
				PercentageUsed:  60,
			},
		}

		score := scorer.Score(uuid.New(), baseSummary(), states, nil, now)

		if !approxEqual(score.SpendingScore, 100) {
			t.Errorf("SpendingScore = %f, want 100", score.SpendingScore)
		}
	})

	t.Run("over budget category is penalized", func(t *testing.T) {
		states := []entity.BudgetCategoryState{
			{
				Category:        entity.CategoryFoodDining,
				AllocatedAmount: decimal.RequireFromString("500"),
				SpentAmount:     decimal.RequireFromString("600"),
				PercentageUsed:  120,
				IsOverBudget:    true,
			},
		}

		score := scorer.Score(uuid.New(), baseSummary(), states, nil, now)

		// 10 base penalty plus 20 percent overshoot at a quarter point each.
		if !approxEqual(score.SpendingScore, 85) {
			t.Errorf("SpendingScore = %f, want 85", score.SpendingScore)
		}
	})
}

func TestScorer_OverallWeighting(t *testing.T) {
	cfg := testEngineConfig()
	scorer := NewScorer(cfg)
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	summary := baseSummary()
	score := scorer.Score(uuid.New(), summary, nil, nil, now)

	want := score.SpendingScore*cfg.SpendingWeight +
		score.SavingScore*cfg.SavingWeight +
		score.DebtScore*cfg.DebtWeight +
		score.EmergencyFundScore*cfg.EmergencyFundWeight +
		score.InvestmentScore*cfg.InvestmentWeight

	if !approxEqual(score.OverallScore, want) {
		t.Errorf("OverallScore = %f, want %f", score.OverallScore, want)
	}
	if score.OverallScore < 0 || score.OverallScore > 100 {
		t.Errorf("OverallScore = %f, out of range", score.OverallScore)
	}
}

func TestScorer_Recommendations(t *testing.T) {
	scorer := NewScorer(testEngineConfig())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Deep debt, no emergency fund, no savings.
	summary := &entity.SummaryAggregate{
		AccountCount:           1,
		TotalAssets:            decimal.RequireFromString("100"),
		TotalLiabilities:       decimal.RequireFromString("9000"),
		LiquidBalance:          decimal.Zero,
		MonthlyIncome:          decimal.RequireFromString("3000"),
		MonthlyExpenses:        decimal.RequireFromString("3500"),
		MonthlyCashFlow:        decimal.RequireFromString("-500"),
		AverageMonthlyExpenses: decimal.RequireFromString("3500"),
		SpendByCategory:        map[entity.TransactionCategory]decimal.Decimal{},
		CategoryMonthlyAverage: map[entity.TransactionCategory]decimal.Decimal{},
	}

	score := scorer.Score(uuid.New(), summary, nil, nil, now)

	if len(score.Recommendations) < 3 {
		t.Fatalf("expected at least 3 recommendations, got %d", len(score.Recommendations))
	}

	// Zero-scored dimensions tie; emergency fund outranks debt and saving.
	if score.Recommendations[0] != recommendationTexts[entity.DimensionEmergencyFund] {
		t.Errorf("first recommendation = %q, want emergency fund guidance", score.Recommendations[0])
	}
}
