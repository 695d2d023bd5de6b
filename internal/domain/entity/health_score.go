// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Score dimension names, in fixed priority order for recommendation
// tie-breaking.
const (
	DimensionEmergencyFund = "emergency_fund"
	DimensionDebt          = "debt"
	DimensionSpending      = "spending"
	DimensionSaving        = "saving"
	DimensionInvestment    = "investment"
)

// FinancialHealthScore represents one scoring run for a user. Scores are
// append-only: a new record is created per run and never mutated; the
// latest score is the one with the greatest CalculatedAt.
type FinancialHealthScore struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	OverallScore       float64
	SpendingScore      float64
	SavingScore        float64
	DebtScore          float64
	EmergencyFundScore float64
	InvestmentScore    float64

	// ScoreFactors records every input and intermediate value that fed the
	// dimension scores, keyed by factor name, for explainability.
	ScoreFactors map[string]float64

	// Recommendations is ordered most impactful first.
	Recommendations []string

	CreatedAt    time.Time
	CalculatedAt time.Time
}

// NewFinancialHealthScore creates a new FinancialHealthScore entity.
func NewFinancialHealthScore(userID uuid.UUID) *FinancialHealthScore {
	now := time.Now().UTC()

	return &FinancialHealthScore{
		ID:           uuid.New(),
		UserID:       userID,
		ScoreFactors: make(map[string]float64),
		CreatedAt:    now,
		CalculatedAt: now,
	}
}

// DimensionScore returns the score for a named dimension.
func (s *FinancialHealthScore) DimensionScore(dimension string) float64 {
	switch dimension {
	case DimensionSpending:
		return s.SpendingScore
	case DimensionSaving:
		return s.SavingScore
	case DimensionDebt:
		return s.DebtScore
	case DimensionEmergencyFund:
		return s.EmergencyFundScore
	case DimensionInvestment:
		return s.InvestmentScore
	}
	return 0
}
