package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/finpulse/backend/internal/domain/entity"
)

// HealthScoreModel represents the financial_health_scores table. Rows
// are append-only; the latest score for a user is resolved by
// calculated_at ordering.
type HealthScoreModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_health_scores_user_calculated"`
	OverallScore       float64        `gorm:"type:decimal(5,2);not null"`
	SpendingScore      float64        `gorm:"type:decimal(5,2);not null"`
	SavingScore        float64        `gorm:"type:decimal(5,2);not null"`
	DebtScore          float64        `gorm:"type:decimal(5,2);not null"`
	EmergencyFundScore float64        `gorm:"type:decimal(5,2);not null"`
	InvestmentScore    float64        `gorm:"type:decimal(5,2);not null"`
	ScoreFactors       FactorMap      `gorm:"type:jsonb"`
	Recommendations    pq.StringArray `gorm:"type:text[]"`
	CreatedAt          time.Time      `gorm:"not null"`
	CalculatedAt       time.Time      `gorm:"not null;index:idx_health_scores_user_calculated"`
}

// TableName returns the table name for the HealthScoreModel.
func (HealthScoreModel) TableName() string {
	return "financial_health_scores"
}

// ToEntity converts a HealthScoreModel to a domain FinancialHealthScore entity.
func (m *HealthScoreModel) ToEntity() *entity.FinancialHealthScore {
	factors := make(map[string]float64, len(m.ScoreFactors))
	for k, v := range m.ScoreFactors {
		factors[k] = v
	}

	return &entity.FinancialHealthScore{
		ID:                 m.ID,
		UserID:             m.UserID,
		OverallScore:       m.OverallScore,
		SpendingScore:      m.SpendingScore,
		SavingScore:        m.SavingScore,
		DebtScore:          m.DebtScore,
		EmergencyFundScore: m.EmergencyFundScore,
		InvestmentScore:    m.InvestmentScore,
		ScoreFactors:       factors,
		Recommendations:    []string(m.Recommendations),
		CreatedAt:          m.CreatedAt,
		CalculatedAt:       m.CalculatedAt,
	}
}

// HealthScoreFromEntity creates a HealthScoreModel from a domain entity.
func HealthScoreFromEntity(score *entity.FinancialHealthScore) *HealthScoreModel {
	return &HealthScoreModel{
		ID:                 score.ID,
		UserID:             score.UserID,
		OverallScore:       score.OverallScore,
		SpendingScore:      score.SpendingScore,
		SavingScore:        score.SavingScore,
		DebtScore:          score.DebtScore,
		EmergencyFundScore: score.EmergencyFundScore,
		InvestmentScore:    score.InvestmentScore,
		ScoreFactors:       FactorMap(score.ScoreFactors),
		Recommendations:    pq.StringArray(score.Recommendations),
		CreatedAt:          score.CreatedAt,
		CalculatedAt:       score.CalculatedAt,
	}
}
