// Package insight contains insight generation and consumption use cases.
package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/domain/entity"
)

// Generator derives actionable insights from a summary aggregate and the
// raw transaction window. Every rule is deterministic; running the
// generator twice over the same snapshot produces the same insights in
// the same order.
type Generator struct {
	cfg config.EngineConfig
}

// NewGenerator creates a new Generator instance.
func NewGenerator(cfg config.EngineConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate runs all insight rules and returns the ranked, truncated
// result. The caller is responsible for dedupe against stored insights
// and for persistence.
func (g *Generator) Generate(
	userID uuid.UUID,
	summary *entity.SummaryAggregate,
	transactions []*entity.Transaction,
	budgetStates []entity.BudgetCategoryState,
	goals []*entity.Goal,
	now time.Time,
) []*entity.Insight {
	confidence := g.confidence(summary.WindowedTransactionCount)

	var insights []*entity.Insight
	insights = append(insights, g.categoryOverspend(userID, summary)...)
	insights = append(insights, g.recurringCharges(userID, transactions)...)
	insights = append(insights, g.goalRisk(userID, summary, goals, now)...)
	insights = append(insights, g.budgetBreaches(userID, budgetStates)...)

	for _, ins := range insights {
		ins.ConfidenceScore = confidence
		ins.CreatedAt = now
	}

	rankInsights(insights)

	if len(insights) > g.cfg.MaxInsights {
		insights = insights[:g.cfg.MaxInsights]
	}
	return insights
}

// confidence grows with the number of transactions backing the analysis,
// from a 0.3 floor up to 1.0 at a full window.
func (g *Generator) confidence(windowedCount int) float64 {
	confidence := 0.3 + float64(windowedCount)/float64(g.cfg.TransactionWindowLimit)*0.7
	if confidence > 1 {
		return 1
	}
	return confidence
}

// categoryOverspend flags categories whose current monthly spend runs
// past the configured multiple of their trailing monthly average.
func (g *Generator) categoryOverspend(userID uuid.UUID, summary *entity.SummaryAggregate) []*entity.Insight {
	var insights []*entity.Insight

	for category, current := range summary.SpendByCategory {
		average, ok := summary.CategoryMonthlyAverage[category]
		if !ok || !average.IsPositive() {
			continue
		}
		threshold := average.Mul(decimal.NewFromFloat(g.cfg.OverspendRatio))
		if !current.GreaterThan(threshold) {
			continue
		}

		savings := current.Sub(average)
		ins := entity.NewInsight(
			userID,
			entity.InsightTypeSpendingPattern,
			fmt.Sprintf("Spending spike in %s", category),
			fmt.Sprintf(
				"You spent %s on %s this month, well above your monthly average of %s.",
				formatMoney(current), category, formatMoney(average),
			),
		)
		ins.PotentialSavings = &savings
		ins.ActionItems = []string{
			fmt.Sprintf("Review your recent %s transactions for one-off or avoidable purchases.", category),
			fmt.Sprintf("Set a budget allocation for %s to get alerted earlier.", category),
		}
		ins.DataPoints = map[string]string{
			"category":        string(category),
			"current_spend":   current.StringFixed(2),
			"monthly_average": average.StringFixed(2),
		}
		ins.Importance = adjustImportance(3, ins.PotentialSavings)
		insights = append(insights, ins)
	}

	return insights
}

// recurringCandidate is one merchant amount cluster under evaluation.
type recurringCandidate struct {
	merchant string
	amount   decimal.Decimal
	dates    []time.Time
}

// recurringCharges detects repeated merchant charges at a near-constant
// amount and near-constant interval, and surfaces the ones whose
// annualized cost clears the configured floor.
func (g *Generator) recurringCharges(userID uuid.UUID, transactions []*entity.Transaction) []*entity.Insight {
	clusters := g.clusterByMerchant(transactions)

	var insights []*entity.Insight
	for _, candidate := range clusters {
		if len(candidate.dates) < 3 {
			continue
		}

		frequency, ok := detectFrequency(candidate.dates)
		if !ok {
			continue
		}

		multiplier := int64(12)
		if frequency == entity.FrequencyWeekly {
			multiplier = 52
		}
		annualized := candidate.amount.Mul(decimal.NewFromInt(multiplier))
		if annualized.LessThan(decimal.NewFromFloat(g.cfg.SubscriptionAnnualCostFloor)) {
			continue
		}

		ins := entity.NewInsight(
			userID,
			entity.InsightTypeSubscriptionReview,
			fmt.Sprintf("Recurring charge from %s", candidate.merchant),
			fmt.Sprintf(
				"%s charges you about %s %s, roughly %s per year.",
				candidate.merchant, formatMoney(candidate.amount), frequency, formatMoney(annualized),
			),
		)
		ins.PotentialSavings = &annualized
		ins.ActionItems = []string{
			fmt.Sprintf("Check whether you still use %s.", candidate.merchant),
			"Cancel or downgrade the subscription if you no longer need it.",
		}
		ins.DataPoints = map[string]string{
			"merchant":        candidate.merchant,
			"frequency":       string(frequency),
			"charge_amount":   candidate.amount.StringFixed(2),
			"annualized_cost": annualized.StringFixed(2),
		}
		ins.Importance = adjustImportance(4, ins.PotentialSavings)
		insights = append(insights, ins)
	}

	return insights
}

// clusterByMerchant groups settled expense transactions by merchant and
// near-equal amount. Amounts within the configured tolerance of the
// cluster's first amount join that cluster.
func (g *Generator) clusterByMerchant(transactions []*entity.Transaction) []recurringCandidate {
	byMerchant := make(map[string][]*entity.Transaction)
	var merchants []string

	for _, tx := range transactions {
		if tx.IsPending || !tx.IsExpense() || tx.MerchantName == "" {
			continue
		}
		if _, seen := byMerchant[tx.MerchantName]; !seen {
			merchants = append(merchants, tx.MerchantName)
		}
		byMerchant[tx.MerchantName] = append(byMerchant[tx.MerchantName], tx)
	}
	sort.Strings(merchants)

	tolerance := decimal.NewFromFloat(g.cfg.RecurringAmountTolerance)

	var candidates []recurringCandidate
	for _, merchant := range merchants {
		group := byMerchant[merchant]
		sort.Slice(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })

		var clusters []recurringCandidate
		for _, tx := range group {
			amount := tx.Amount.Abs()
			matched := false
			for i := range clusters {
				band := clusters[i].amount.Mul(tolerance)
				if amount.Sub(clusters[i].amount).Abs().LessThanOrEqual(band) {
					clusters[i].dates = append(clusters[i].dates, tx.Date)
					matched = true
					break
				}
			}
			if !matched {
				clusters = append(clusters, recurringCandidate{
					merchant: merchant,
					amount:   amount,
					dates:    []time.Time{tx.Date},
				})
			}
		}
		candidates = append(candidates, clusters...)
	}

	return candidates
}

// detectFrequency classifies the gaps between consecutive charge dates.
// Every gap must land in the weekly band (5 to 9 days) or every gap in
// the monthly band (25 to 35 days); mixed or irregular gaps do not count
// as recurring.
func detectFrequency(dates []time.Time) (entity.RecurringFrequency, bool) {
	weekly, monthly := true, true

	for i := 1; i < len(dates); i++ {
		gap := dates[i].Sub(dates[i-1]).Hours() / 24
		if gap < 5 || gap > 9 {
			weekly = false
		}
		if gap < 25 || gap > 35 {
			monthly = false
		}
	}

	switch {
	case weekly:
		return entity.FrequencyWeekly, true
	case monthly:
		return entity.FrequencyMonthly, true
	}
	return "", false
}

// goalRisk flags active goals whose required monthly contribution far
// exceeds what the user actually saves per month on average.
func (g *Generator) goalRisk(userID uuid.UUID, summary *entity.SummaryAggregate, goals []*entity.Goal, now time.Time) []*entity.Insight {
	avgNetSavings := summary.AverageMonthlyNetSavings

	var insights []*entity.Insight
	for _, goal := range goals {
		if goal.IsCompleted || !goal.IsActive {
			continue
		}

		required := goal.RequiredMonthlyContribution(now)
		if !required.IsPositive() {
			continue
		}

		riskThreshold := avgNetSavings.Mul(decimal.NewFromFloat(g.cfg.GoalRiskMultiple))
		if avgNetSavings.IsPositive() && !required.GreaterThan(riskThreshold) {
			continue
		}

		probability := 0.05
		if avgNetSavings.IsPositive() {
			probability = clampProbability(avgNetSavings.Div(required).InexactFloat64())
		}

		ins := entity.NewInsight(
			userID,
			entity.InsightTypeGoalAdvice,
			fmt.Sprintf("Goal at risk: %s", goal.Name),
			fmt.Sprintf(
				"Reaching %s by %s needs %s per month, but you save about %s per month.",
				goal.Name, goal.TargetDate.Format("Jan 2006"),
				formatMoney(required), formatMoney(avgNetSavings),
			),
		)
		ins.ActionItems = []string{
			fmt.Sprintf("Set up an automatic monthly transfer toward %s.", goal.Name),
			"Consider moving the target date or lowering the target amount.",
		}
		ins.DataPoints = map[string]string{
			"goal_id":             goal.ID.String(),
			"required_monthly":    required.StringFixed(2),
			"average_net_savings": avgNetSavings.StringFixed(2),
			"success_probability": fmt.Sprintf("%.2f", probability),
		}
		ins.Importance = adjustImportance(2, nil)
		insights = append(insights, ins)
	}

	return insights
}

// budgetBreaches turns each over-budget category state into an insight.
func (g *Generator) budgetBreaches(userID uuid.UUID, states []entity.BudgetCategoryState) []*entity.Insight {
	var insights []*entity.Insight

	for _, state := range states {
		if !state.IsOverBudget {
			continue
		}

		overspend := state.SpentAmount.Sub(state.AllocatedAmount)
		ins := entity.NewInsight(
			userID,
			entity.InsightTypeBudgetRecommendation,
			fmt.Sprintf("Budget exceeded for %s", state.Category),
			fmt.Sprintf(
				"You have spent %s of your %s budget for %s (%.0f%%).",
				formatMoney(state.SpentAmount), formatMoney(state.AllocatedAmount),
				state.Category, state.PercentageUsed,
			),
		)
		ins.PotentialSavings = &overspend
		ins.ActionItems = []string{
			fmt.Sprintf("Pause non-essential %s spending for the rest of the period.", state.Category),
			fmt.Sprintf("Raise the %s allocation if the budget no longer reflects reality.", state.Category),
		}
		ins.DataPoints = map[string]string{
			"category":  string(state.Category),
			"allocated": state.AllocatedAmount.StringFixed(2),
			"spent":     state.SpentAmount.StringFixed(2),
		}
		ins.Importance = adjustImportance(2, ins.PotentialSavings)
		insights = append(insights, ins)
	}

	return insights
}

// adjustImportance shifts a rule's base importance by the money at stake:
// large savings promote to the top, trivial savings demote one step.
func adjustImportance(base int, savings *decimal.Decimal) int {
	importance := base
	if savings != nil {
		if savings.GreaterThanOrEqual(decimal.NewFromInt(500)) {
			importance = entity.InsightImportanceHighest
		} else if savings.LessThan(decimal.NewFromInt(50)) {
			importance++
		}
	}
	if importance > entity.InsightImportanceLowest {
		importance = entity.InsightImportanceLowest
	}
	if importance < entity.InsightImportanceHighest {
		importance = entity.InsightImportanceHighest
	}
	return importance
}

// rankInsights orders by importance, then potential savings descending,
// then title for a stable total order.
func rankInsights(insights []*entity.Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Importance != insights[j].Importance {
			return insights[i].Importance < insights[j].Importance
		}
		si, sj := savingsOrZero(insights[i]), savingsOrZero(insights[j])
		if !si.Equal(sj) {
			return si.GreaterThan(sj)
		}
		return insights[i].Title < insights[j].Title
	})
}

func savingsOrZero(ins *entity.Insight) decimal.Decimal {
	if ins.PotentialSavings == nil {
		return decimal.Zero
	}
	return *ins.PotentialSavings
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
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
