// Package analysis contains the financial health scoring use cases.
package analysis

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/domain/entity"
)

// Scorer computes the five dimension scores and the weighted overall
// score from a summary aggregate, budget tracking states and goals. All
// rules are deterministic and monotonic; every input and intermediate
// value is recorded in the score factors.
type Scorer struct {
	cfg config.EngineConfig
}

// NewScorer creates a new Scorer instance.
func NewScorer(cfg config.EngineConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// dimensionPriority fixes the tie-break order for recommendations.
var dimensionPriority = []string{
	entity.DimensionEmergencyFund,
	entity.DimensionDebt,
	entity.DimensionSpending,
	entity.DimensionSaving,
	entity.DimensionInvestment,
}

var recommendationTexts = map[string]string{
	entity.DimensionEmergencyFund: "Build an emergency fund covering at least six months of expenses.",
	entity.DimensionDebt:          "Reduce outstanding debt to bring your liabilities below your assets.",
	entity.DimensionSpending:      "Rein in over-budget categories to get spending back on plan.",
	entity.DimensionSaving:        "Increase your monthly savings rate toward the 20% target.",
	entity.DimensionInvestment:    "Start or grow investment accounts to put idle balances to work.",
}

// Score produces a FinancialHealthScore for the given aggregates. With no
// accounts it returns an all-zero score with a single recommendation to
// connect an account rather than failing.
func (s *Scorer) Score(
	userID uuid.UUID,
	summary *entity.SummaryAggregate,
	budgetStates []entity.BudgetCategoryState,
	goals []*entity.Goal,
	now time.Time,
) *entity.FinancialHealthScore {
	score := entity.NewFinancialHealthScore(userID)
	score.CalculatedAt = now.UTC()

	if summary.AccountCount == 0 {
		score.ScoreFactors["account_count"] = 0
		score.Recommendations = []string{
			"Connect a bank account to start tracking your financial health.",
		}
		return score
	}

	score.SpendingScore = s.spendingScore(summary, budgetStates, score.ScoreFactors)
	score.SavingScore = s.savingScore(summary, score.ScoreFactors)
	score.DebtScore = s.debtScore(summary, score.ScoreFactors)
	score.EmergencyFundScore = s.emergencyFundScore(summary, score.ScoreFactors)
	score.InvestmentScore = s.investmentScore(summary, score.ScoreFactors)

	score.OverallScore = clampScore(
		score.SpendingScore*s.cfg.SpendingWeight +
			score.SavingScore*s.cfg.SavingWeight +
			score.DebtScore*s.cfg.DebtWeight +
			score.EmergencyFundScore*s.cfg.EmergencyFundWeight +
			score.InvestmentScore*s.cfg.InvestmentWeight,
	)

	score.ScoreFactors["account_count"] = float64(summary.AccountCount)
	score.ScoreFactors["goal_count"] = float64(len(goals))
	score.Recommendations = s.recommendations(score)

	return score
}

// spendingScore starts at 100 and subtracts a penalty per over-budget
// category proportional to how far past its allocation the spend ran,
// floored at 0. Without any budget allocations there is nothing to judge
// spending against, so a neutral baseline applies.
func (s *Scorer) spendingScore(summary *entity.SummaryAggregate, states []entity.BudgetCategoryState, factors map[string]float64) float64 {
	const noBudgetBaseline = 70.0

	allocated := 0
	overBudget := 0
	penalty := 0.0

	for _, state := range states {
		if !state.AllocatedAmount.IsPositive() {
			continue
		}
		allocated++
		if !state.IsOverBudget {
			continue
		}
		overBudget++
		overshoot := state.PercentageUsed - 100
		penalty += 10 + min(overshoot*0.25, 25)
	}

	factors["budgeted_categories"] = float64(allocated)
	factors["over_budget_categories"] = float64(overBudget)
	factors["spending_penalty"] = penalty

	if allocated == 0 {
		return noBudgetBaseline
	}
	return clampScore(100 - penalty)
}

// savingScore scales the savings rate against the configured target rate:
// a zero or negative rate scores 0, the target rate or better scores 100.
func (s *Scorer) savingScore(summary *entity.SummaryAggregate, factors map[string]float64) float64 {
	income := summary.MonthlyIncome.InexactFloat64()
	cashFlow := summary.MonthlyCashFlow.InexactFloat64()

	rate := cashFlow / max(income, 1)

	factors["monthly_income"] = income
	factors["monthly_expenses"] = summary.MonthlyExpenses.InexactFloat64()
	factors["monthly_cash_flow"] = cashFlow
	factors["savings_rate"] = rate

	return clampScore(rate / s.cfg.TargetSavingsRate * 100)
}

// debtScore maps the liability-to-asset ratio onto the score scale. A
// user with no liability accounts scores 100; debt at or above total
// assets scores 0.
func (s *Scorer) debtScore(summary *entity.SummaryAggregate, factors map[string]float64) float64 {
	liabilities := summary.TotalLiabilities.InexactFloat64()
	assets := summary.TotalAssets.InexactFloat64()

	if liabilities == 0 {
		factors["debt_ratio"] = 0
		return 100
	}
	if assets <= 0 {
		factors["debt_ratio"] = 1
		return 0
	}

	ratio := liabilities / assets
	factors["debt_ratio"] = ratio

	return clampScore(100 - ratio*100)
}

// emergencyFundScore measures liquid balances in months of average
// expenses: the configured target (six months) scores 100, scaled
// linearly below. With neither expenses nor liquid balance the state is
// undefined but neutral and scores 50.
func (s *Scorer) emergencyFundScore(summary *entity.SummaryAggregate, factors map[string]float64) float64 {
	liquid := summary.LiquidBalance.InexactFloat64()
	avgExpenses := summary.AverageMonthlyExpenses.InexactFloat64()

	factors["liquid_balance"] = liquid
	factors["average_monthly_expenses"] = avgExpenses

	if avgExpenses <= 0 {
		if liquid > 0 {
			factors["emergency_fund_months"] = s.cfg.EmergencyFundMonths
			return 100
		}
		factors["emergency_fund_months"] = 0
		return 50
	}

	months := liquid / avgExpenses
	factors["emergency_fund_months"] = months

	return clampScore(months / s.cfg.EmergencyFundMonths * 100)
}

// investmentScore rewards the share of assets held in investment
// accounts. No investment accounts yields a low but non-zero baseline:
// not yet started is not the same as failing.
func (s *Scorer) investmentScore(summary *entity.SummaryAggregate, factors map[string]float64) float64 {
	const notStartedBaseline = 25.0

	factors["investment_account_count"] = float64(summary.InvestmentAccountCount)

	if summary.InvestmentAccountCount == 0 {
		factors["investment_share"] = 0
		return notStartedBaseline
	}

	assets := summary.TotalAssets.InexactFloat64()
	invested := summary.InvestmentBalance.InexactFloat64()

	share := 0.0
	if assets > 0 {
		share = invested / assets
	}
	factors["investment_share"] = share

	return clampScore(40 + share*60)
}

// recommendations returns one entry per dimension scoring below the
// configured threshold, lowest score first, ties broken by the fixed
// dimension priority order.
func (s *Scorer) recommendations(score *entity.FinancialHealthScore) []string {
	type weak struct {
		dimension string
		score     float64
		priority  int
	}

	var weaks []weak
	for i, dimension := range dimensionPriority {
		value := score.DimensionScore(dimension)
		if value < s.cfg.RecommendationThreshold {
			weaks = append(weaks, weak{dimension: dimension, score: value, priority: i})
		}
	}

	sort.SliceStable(weaks, func(i, j int) bool {
		if weaks[i].score != weaks[j].score {
			return weaks[i].score < weaks[j].score
		}
		return weaks[i].priority < weaks[j].priority
	})

	recommendations := make([]string, 0, len(weaks))
	for _, w := range weaks {
		recommendations = append(recommendations, recommendationTexts[w.dimension])
	}
	return recommendations
}

func clampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
