// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the aggregated overview served to clients.
type DashboardResponse struct {
	TotalBalance    float64                  `json:"total_balance"`
	NetWorth        float64                  `json:"net_worth"`
	MonthlyIncome   float64                  `json:"monthly_income"`
	MonthlyExpenses float64                  `json:"monthly_expenses"`
	MonthlyCashFlow float64                  `json:"monthly_cash_flow"`
	Accounts        []AccountResponse        `json:"accounts"`
	LatestScore     *HealthScoreResponse     `json:"latest_score,omitempty"`
	RecentInsights  []InsightResponse        `json:"recent_insights"`
	ActiveBudgets   []BudgetTrackingResponse `json:"active_budgets"`
	Goals           []GoalResponse           `json:"goals"`
	GeneratedAt     time.Time                `json:"generated_at"`
	FromCache       bool                     `json:"from_cache"`
}

// ToDashboardResponse converts a dashboard use case output to a
// DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	d := output.Dashboard

	accounts := make([]AccountResponse, 0, len(d.Accounts))
	for _, a := range d.Accounts {
		accounts = append(accounts, ToAccountResponse(a))
	}

	insights := make([]InsightResponse, 0, len(d.RecentInsights))
	for _, i := range d.RecentInsights {
		insights = append(insights, ToInsightResponse(i))
	}

	budgets := make([]BudgetTrackingResponse, 0, len(d.ActiveBudgets))
	for _, b := range d.ActiveBudgets {
		budgets = append(budgets, ToBudgetTrackingResponse(b))
	}

	goals := make([]GoalResponse, 0, len(d.Goals))
	for _, g := range d.Goals {
		goals = append(goals, ToGoalResponse(g))
	}

	response := DashboardResponse{
		TotalBalance:    d.TotalBalance.InexactFloat64(),
		NetWorth:        d.NetWorth.InexactFloat64(),
		MonthlyIncome:   d.MonthlyIncome.InexactFloat64(),
		MonthlyExpenses: d.MonthlyExpenses.InexactFloat64(),
		MonthlyCashFlow: d.MonthlyCashFlow.InexactFloat64(),
		Accounts:        accounts,
		RecentInsights:  insights,
		ActiveBudgets:   budgets,
		Goals:           goals,
		GeneratedAt:     d.GeneratedAt,
		FromCache:       output.FromCache,
	}

	if d.LatestScore != nil {
		score := ToHealthScoreResponse(d.LatestScore)
		response.LatestScore = &score
	}

	return response
}
