// Package analysis contains the financial health scoring use cases.
package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/domain/entity"
)

// Aggregator reduces raw account and transaction records into the
// SummaryAggregate consumed by the scorer and the insight generator. It
// holds no state beyond its configuration; BuildSummary is a pure
// function of its arguments.
type Aggregator struct {
	cashFlowWindowDays int
	historyWindowDays  int
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(cfg config.EngineConfig) *Aggregator {
	return &Aggregator{
		cashFlowWindowDays: cfg.CashFlowWindowDays,
		historyWindowDays:  cfg.HistoryWindowDays,
	}
}

// BuildSummary computes the summary aggregate for one user's records.
// Transactions are expected ordered most recent first, bounded by the
// caller. Zero transactions yields zero-valued sums, not an error.
func (a *Aggregator) BuildSummary(
	accounts []*entity.Account,
	transactions []*entity.Transaction,
	now time.Time,
) *entity.SummaryAggregate {
	summary := &entity.SummaryAggregate{
		SpendByCategory:        make(map[entity.TransactionCategory]decimal.Decimal),
		CategoryMonthlyAverage: make(map[entity.TransactionCategory]decimal.Decimal),
		AccountCount:           len(accounts),
		TransactionCount:       len(transactions),
	}

	for _, account := range accounts {
		summary.TotalBalance = summary.TotalBalance.Add(account.CurrentBalance)
		summary.NetWorth = summary.NetWorth.Add(account.EquityContribution())

		if account.IsLiability() {
			summary.TotalLiabilities = summary.TotalLiabilities.Add(account.CurrentBalance.Abs())
			continue
		}

		summary.TotalAssets = summary.TotalAssets.Add(account.CurrentBalance)
		if account.IsLiquid() {
			summary.LiquidBalance = summary.LiquidBalance.Add(account.CurrentBalance)
		}
		if account.IsInvestment() {
			summary.InvestmentBalance = summary.InvestmentBalance.Add(account.CurrentBalance)
			summary.InvestmentAccountCount++
		}
	}

	cashFlowStart := now.AddDate(0, 0, -a.cashFlowWindowDays)
	historyStart := now.AddDate(0, 0, -a.historyWindowDays)
	historyMonths := decimal.NewFromFloat(float64(a.historyWindowDays) / 30.0)

	var historyIncome, historyExpenses decimal.Decimal
	historyCategoryTotals := make(map[entity.TransactionCategory]decimal.Decimal)
	recurringCount := 0

	for _, tx := range transactions {
		if tx.IsRecurring {
			recurringCount++
		}

		// Pending transactions never contribute to realized flows.
		if tx.IsPending {
			continue
		}

		inCashFlowWindow := !tx.Date.Before(cashFlowStart) && !tx.Date.After(now)
		inHistoryWindow := !tx.Date.Before(historyStart) && !tx.Date.After(now)

		if inCashFlowWindow {
			summary.WindowedTransactionCount++
			if tx.IsIncome() {
				summary.MonthlyIncome = summary.MonthlyIncome.Add(tx.Amount)
			} else if tx.IsExpense() {
				amount := tx.Amount.Abs()
				summary.MonthlyExpenses = summary.MonthlyExpenses.Add(amount)
				summary.SpendByCategory[tx.Category] = summary.SpendByCategory[tx.Category].Add(amount)
			}
		}

		if inHistoryWindow {
			if tx.IsIncome() {
				historyIncome = historyIncome.Add(tx.Amount)
			} else if tx.IsExpense() {
				amount := tx.Amount.Abs()
				historyExpenses = historyExpenses.Add(amount)
				historyCategoryTotals[tx.Category] = historyCategoryTotals[tx.Category].Add(amount)
			}
		}
	}

	summary.MonthlyCashFlow = summary.MonthlyIncome.Sub(summary.MonthlyExpenses)

	if historyMonths.IsPositive() {
		for category, total := range historyCategoryTotals {
			summary.CategoryMonthlyAverage[category] = total.Div(historyMonths)
		}
		summary.AverageMonthlyExpenses = historyExpenses.Div(historyMonths)
		summary.AverageMonthlyNetSavings = historyIncome.Sub(historyExpenses).Div(historyMonths)
	}

	if len(transactions) > 0 {
		summary.RecurringRatio = float64(recurringCount) / float64(len(transactions))
	}

	return summary
}
