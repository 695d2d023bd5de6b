// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the type of financial goal.
type GoalType string

const (
	GoalTypeEmergencyFund GoalType = "emergency_fund"
	GoalTypeDebtPayoff    GoalType = "debt_payoff"
	GoalTypeInvestment    GoalType = "investment"
	GoalTypeSavingsTarget GoalType = "savings_target"
	GoalTypeRetirement    GoalType = "retirement"
	GoalTypeVacation      GoalType = "vacation"
	GoalTypeHomePurchase  GoalType = "home_purchase"
)

// IsValid reports whether the goal type is one of the known types.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeEmergencyFund, GoalTypeDebtPayoff, GoalTypeInvestment,
		GoalTypeSavingsTarget, GoalTypeRetirement, GoalTypeVacation,
		GoalTypeHomePurchase:
		return true
	}
	return false
}

// Goal priority bounds. 1 is the highest priority, 5 the lowest.
const (
	GoalPriorityHighest = 1
	GoalPriorityLowest  = 5
)

// Goal represents a financial goal in the FinPulse system.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          GoalType
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Priority      int
	IsCompleted   bool
	IsActive      bool
	CompletedAt   *time.Time

	// Populated deterministically by the goal risk rule.
	ProbabilitySuccess             *float64
	RecommendedMonthlyContribution *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	name string,
	goalType GoalType,
	targetAmount decimal.Decimal,
	targetDate time.Time,
	priority int,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Type:          goalType,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Priority:      priority,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MonthsRemaining returns the number of months until the target date,
// floored at zero.
func (g *Goal) MonthsRemaining(now time.Time) float64 {
	if !g.TargetDate.After(now) {
		return 0
	}
	return g.TargetDate.Sub(now).Hours() / 24 / 30
}

// RequiredMonthlyContribution returns the monthly amount needed to reach
// the target by the target date. When no time remains, the full shortfall
// is required immediately.
func (g *Goal) RequiredMonthlyContribution(now time.Time) decimal.Decimal {
	shortfall := g.TargetAmount.Sub(g.CurrentAmount)
	if shortfall.IsNegative() {
		return decimal.Zero
	}
	months := g.MonthsRemaining(now)
	if months < 1 {
		return shortfall
	}
	return shortfall.Div(decimal.NewFromFloat(months))
}
