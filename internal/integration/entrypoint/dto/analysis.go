// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// HealthScoreResponse represents a financial health score in API
// responses.
type HealthScoreResponse struct {
	ID                 string             `json:"id"`
	OverallScore       float64            `json:"overall_score"`
	SpendingScore      float64            `json:"spending_score"`
	SavingScore        float64            `json:"saving_score"`
	DebtScore          float64            `json:"debt_score"`
	EmergencyFundScore float64            `json:"emergency_fund_score"`
	InvestmentScore    float64            `json:"investment_score"`
	ScoreFactors       map[string]float64 `json:"score_factors"`
	Recommendations    []string           `json:"recommendations"`
	CalculatedAt       time.Time          `json:"calculated_at"`
}

// ScoreHistoryResponse represents the response for listing score history.
type ScoreHistoryResponse struct {
	Scores []HealthScoreResponse `json:"scores"`
}

// ToHealthScoreResponse converts a domain FinancialHealthScore entity to
// a HealthScoreResponse DTO.
func ToHealthScoreResponse(s *entity.FinancialHealthScore) HealthScoreResponse {
	return HealthScoreResponse{
		ID:                 s.ID.String(),
		OverallScore:       s.OverallScore,
		SpendingScore:      s.SpendingScore,
		SavingScore:        s.SavingScore,
		DebtScore:          s.DebtScore,
		EmergencyFundScore: s.EmergencyFundScore,
		InvestmentScore:    s.InvestmentScore,
		ScoreFactors:       s.ScoreFactors,
		Recommendations:    s.Recommendations,
		CalculatedAt:       s.CalculatedAt,
	}
}
