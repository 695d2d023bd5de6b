// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// SummaryAggregate is the reduced numeric summary of a user's raw records
// consumed by the health scorer and the insight generator. All monetary
// fields are in the user's base currency; no FX conversion happens here.
type SummaryAggregate struct {
	// Balance aggregates over all accounts.
	TotalBalance      decimal.Decimal
	NetWorth          decimal.Decimal
	TotalAssets       decimal.Decimal
	TotalLiabilities  decimal.Decimal // positive magnitude
	LiquidBalance     decimal.Decimal
	InvestmentBalance decimal.Decimal

	AccountCount           int
	InvestmentAccountCount int

	// Trailing cash flow window (pending transactions excluded).
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal // positive magnitude
	MonthlyCashFlow decimal.Decimal

	// SpendByCategory maps category to total expense magnitude within the
	// cash flow window.
	SpendByCategory map[TransactionCategory]decimal.Decimal

	// Historical window aggregates (trailing HistoryWindowDays).
	CategoryMonthlyAverage   map[TransactionCategory]decimal.Decimal
	AverageMonthlyExpenses   decimal.Decimal
	AverageMonthlyNetSavings decimal.Decimal

	// RecurringRatio is the fraction of transactions flagged recurring,
	// used as a stability signal.
	RecurringRatio float64

	// TransactionCount is the number of transactions in the fetched
	// window; WindowedTransactionCount counts only those inside the cash
	// flow window.
	TransactionCount         int
	WindowedTransactionCount int
}
