// Package analysis contains the financial health scoring use cases.
package analysis

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

func testAccount(accountType entity.AccountType, balance string) *entity.Account {
	return &entity.Account{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Name:           "test account",
		Type:           accountType,
		CurrentBalance: decimal.RequireFromString(balance),
		IsActive:       true,
	}
}

func testTransaction(amount string, category entity.TransactionCategory, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestAggregator_BuildSummary_Balances(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(testEngineConfig())

	accounts := []*entity.Account{
		testAccount(entity.AccountTypeChecking, "1000"),
		testAccount(entity.AccountTypeSavings, "5000"),
		testAccount(entity.AccountTypeInvestment, "2000"),
		testAccount(entity.AccountTypeCredit, "-500"),
		testAccount(entity.AccountTypeLoan, "3000"),
	}

	summary := aggregator.BuildSummary(accounts, nil, now)

	// Net worth subtracts liability magnitudes regardless of stored sign.
	if got, want := summary.NetWorth.String(), "4500"; got != want {
		t.Errorf("NetWorth = %s, want %s", got, want)
	}
	if got, want := summary.TotalAssets.String(), "8000"; got != want {
		t.Errorf("TotalAssets = %s, want %s", got, want)
	}
	if got, want := summary.TotalLiabilities.String(), "3500"; got != want {
		t.Errorf("TotalLiabilities = %s, want %s", got, want)
	}
	if got, want := summary.LiquidBalance.String(), "6000"; got != want {
		t.Errorf("LiquidBalance = %s, want %s", got, want)
	}
	if got, want := summary.InvestmentBalance.String(), "2000"; got != want {
		t.Errorf("InvestmentBalance = %s, want %s", got, want)
	}
	if summary.InvestmentAccountCount != 1 {
		t.Errorf("InvestmentAccountCount = %d, want 1", summary.InvestmentAccountCount)
	}
	if summary.AccountCount != 5 {
		t.Errorf("AccountCount = %d, want 5", summary.AccountCount)
	}
}

func TestAggregator_BuildSummary_CashFlowWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(testEngineConfig())

	transactions := []*entity.Transaction{
		testTransaction("3000", entity.CategoryIncome, now.AddDate(0, 0, -5)),
		testTransaction("-400", entity.CategoryFoodDining, now.AddDate(0, 0, -10)),
		testTransaction("-100", entity.CategoryEntertainment, now.AddDate(0, 0, -20)),
		// Outside the 30 day cash flow window, inside the history window.
		testTransaction("-600", entity.CategoryFoodDining, now.AddDate(0, 0, -45)),
		// Outside both windows.
		testTransaction("-999", entity.CategoryShopping, now.AddDate(0, 0, -120)),
	}

	summary := aggregator.BuildSummary(nil, transactions, now)

	if got, want := summary.MonthlyIncome.String(), "3000"; got != want {
		t.Errorf("MonthlyIncome = %s, want %s", got, want)
	}
	if got, want := summary.MonthlyExpenses.String(), "500"; got != want {
		t.Errorf("MonthlyExpenses = %s, want %s", got, want)
	}
	if got, want := summary.MonthlyCashFlow.String(), "2500"; got != want {
		t.Errorf("MonthlyCashFlow = %s, want %s", got, want)
	}
	if got, want := summary.SpendByCategory[entity.CategoryFoodDining].String(), "400"; got != want {
		t.Errorf("SpendByCategory[food_dining] = %s, want %s", got, want)
	}
	if summary.WindowedTransactionCount != 3 {
		t.Errorf("WindowedTransactionCount = %d, want 3", summary.WindowedTransactionCount)
	}

	// History averages cover 90 days, treated as 3 months.
	if got, want := summary.CategoryMonthlyAverage[entity.CategoryFoodDining].StringFixed(2), "333.33"; got != want {
		t.Errorf("CategoryMonthlyAverage[food_dining] = %s, want %s", got, want)
	}
	if got, want := summary.AverageMonthlyExpenses.StringFixed(2), "366.67"; got != want {
		t.Errorf("AverageMonthlyExpenses = %s, want %s", got, want)
	}
}

func TestAggregator_BuildSummary_SkipsPending(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(testEngineConfig())

	pending := testTransaction("-250", entity.CategoryShopping, now.AddDate(0, 0, -2))
	pending.IsPending = true

	summary := aggregator.BuildSummary(nil, []*entity.Transaction{pending}, now)

	if !summary.MonthlyExpenses.IsZero() {
		t.Errorf("MonthlyExpenses = %s, want 0", summary.MonthlyExpenses)
	}
	if summary.WindowedTransactionCount != 0 {
		t.Errorf("WindowedTransactionCount = %d, want 0", summary.WindowedTransactionCount)
	}
	if summary.TransactionCount != 1 {
		t.Errorf("TransactionCount = %d, want 1", summary.TransactionCount)
	}
}

func TestAggregator_BuildSummary_Empty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(testEngineConfig())

	summary := aggregator.BuildSummary(nil, nil, now)

	if summary.AccountCount != 0 || summary.TransactionCount != 0 {
		t.Fatalf("expected empty counts, got accounts=%d transactions=%d", summary.AccountCount, summary.TransactionCount)
	}
	if !summary.NetWorth.IsZero() || !summary.MonthlyCashFlow.IsZero() {
		t.Error("expected zero-valued sums for empty input")
	}
	if summary.RecurringRatio != 0 {
		t.Errorf("RecurringRatio = %f, want 0", summary.RecurringRatio)
	}
}

func TestAggregator_BuildSummary_RecurringRatio(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	aggregator := NewAggregator(testEngineConfig())

	recurring := testTransaction("-15", entity.CategoryBillsUtilities, now.AddDate(0, 0, -3))
	recurring.IsRecurring = true

	transactions := []*entity.Transaction{
		recurring,
		testTransaction("-40", entity.CategoryFoodDining, now.AddDate(0, 0, -4)),
		testTransaction("-60", entity.CategoryShopping, now.AddDate(0, 0, -6)),
		testTransaction("-80", entity.CategoryTravel, now.AddDate(0, 0, -8)),
	}

	summary := aggregator.BuildSummary(nil, transactions, now)

	if summary.RecurringRatio != 0.25 {
		t.Errorf("RecurringRatio = %f, want 0.25", summary.RecurringRatio)
	}
}
