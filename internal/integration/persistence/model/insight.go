package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/domain/entity"
)

// InsightModel represents the insights table in the database. Inserts
// happen in generator batches; only the read and dismissed flags are
// mutated afterwards.
type InsightModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type             string           `gorm:"type:varchar(30);not null"`
	Title            string           `gorm:"type:varchar(255);not null"`
	Description      string           `gorm:"type:text;not null"`
	Importance       int              `gorm:"not null;default:5"`
	ConfidenceScore  float64          `gorm:"type:decimal(4,3);not null"`
	PotentialSavings *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ActionItems      pq.StringArray   `gorm:"type:text[]"`
	DataPoints       StringMap        `gorm:"type:jsonb"`
	IsRead           bool             `gorm:"default:false"`
	IsDismissed      bool             `gorm:"default:false"`
	CreatedAt        time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for the InsightModel.
func (InsightModel) TableName() string {
	return "insights"
}

// ToEntity converts an InsightModel to a domain Insight entity.
func (m *InsightModel) ToEntity() *entity.Insight {
	dataPoints := make(map[string]string, len(m.DataPoints))
	for k, v := range m.DataPoints {
		dataPoints[k] = v
	}

	return &entity.Insight{
		ID:               m.ID,
		UserID:           m.UserID,
		Type:             entity.InsightType(m.Type),
		Title:            m.Title,
		Description:      m.Description,
		Importance:       m.Importance,
		ConfidenceScore:  m.ConfidenceScore,
		PotentialSavings: m.PotentialSavings,
		ActionItems:      []string(m.ActionItems),
		DataPoints:       dataPoints,
		IsRead:           m.IsRead,
		IsDismissed:      m.IsDismissed,
		CreatedAt:        m.CreatedAt,
	}
}

// InsightFromEntity creates an InsightModel from a domain Insight entity.
func InsightFromEntity(insight *entity.Insight) *InsightModel {
	return &InsightModel{
		ID:               insight.ID,
		UserID:           insight.UserID,
		Type:             string(insight.Type),
		Title:            insight.Title,
		Description:      insight.Description,
		Importance:       insight.Importance,
		ConfidenceScore:  insight.ConfidenceScore,
		PotentialSavings: insight.PotentialSavings,
		ActionItems:      pq.StringArray(insight.ActionItems),
		DataPoints:       StringMap(insight.DataPoints),
		IsRead:           insight.IsRead,
		IsDismissed:      insight.IsDismissed,
		CreatedAt:        insight.CreatedAt,
	}
}
