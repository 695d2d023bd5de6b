package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finpulse/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(30);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate    time.Time       `gorm:"not null"`
	Priority      int             `gorm:"not null;default:3"`
	IsCompleted   bool            `gorm:"default:false"`
	IsActive      bool            `gorm:"default:true"`
	CompletedAt   *time.Time

	ProbabilitySuccess             *float64         `gorm:"type:decimal(4,3)"`
	RecommendedMonthlyContribution *decimal.Decimal `gorm:"type:decimal(15,2)"`

	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Goal{
		ID:                             m.ID,
		UserID:                         m.UserID,
		Name:                           m.Name,
		Type:                           entity.GoalType(m.Type),
		TargetAmount:                   m.TargetAmount,
		CurrentAmount:                  m.CurrentAmount,
		TargetDate:                     m.TargetDate,
		Priority:                       m.Priority,
		IsCompleted:                    m.IsCompleted,
		IsActive:                       m.IsActive,
		CompletedAt:                    m.CompletedAt,
		ProbabilitySuccess:             m.ProbabilitySuccess,
		RecommendedMonthlyContribution: m.RecommendedMonthlyContribution,
		CreatedAt:                      m.CreatedAt,
		UpdatedAt:                      m.UpdatedAt,
		DeletedAt:                      deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &GoalModel{
		ID:                             goal.ID,
		UserID:                         goal.UserID,
		Name:                           goal.Name,
		Type:                           string(goal.Type),
		TargetAmount:                   goal.TargetAmount,
		CurrentAmount:                  goal.CurrentAmount,
		TargetDate:                     goal.TargetDate,
		Priority:                       goal.Priority,
		IsCompleted:                    goal.IsCompleted,
		IsActive:                       goal.IsActive,
		CompletedAt:                    goal.CompletedAt,
		ProbabilitySuccess:             goal.ProbabilitySuccess,
		RecommendedMonthlyContribution: goal.RecommendedMonthlyContribution,
		CreatedAt:                      goal.CreatedAt,
		UpdatedAt:                      goal.UpdatedAt,
		DeletedAt:                      deletedAt,
	}
}
