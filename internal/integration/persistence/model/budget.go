package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finpulse/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID               `gorm:"type:uuid;not null;index"`
	Name        string                  `gorm:"type:varchar(255);not null"`
	Period      string                  `gorm:"type:varchar(10);not null"`
	TotalBudget decimal.Decimal         `gorm:"type:decimal(15,2);not null"`
	StartDate   time.Time               `gorm:"not null"`
	EndDate     *time.Time
	IsActive    bool                    `gorm:"default:true"`
	Allocations []BudgetAllocationModel `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time               `gorm:"not null"`
	UpdatedAt   time.Time               `gorm:"not null"`
	DeletedAt   gorm.DeletedAt          `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// BudgetAllocationModel represents the budget_allocations table.
type BudgetAllocationModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category        string          `gorm:"type:varchar(30);not null"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the BudgetAllocationModel.
func (BudgetAllocationModel) TableName() string {
	return "budget_allocations"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	allocations := make([]entity.BudgetAllocation, len(m.Allocations))
	for i, a := range m.Allocations {
		allocations[i] = entity.BudgetAllocation{
			ID:              a.ID,
			BudgetID:        a.BudgetID,
			Category:        entity.TransactionCategory(a.Category),
			AllocatedAmount: a.AllocatedAmount,
		}
	}

	return &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Period:      entity.BudgetPeriod(m.Period),
		TotalBudget: m.TotalBudget,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsActive:    m.IsActive,
		Allocations: allocations,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	allocations := make([]BudgetAllocationModel, len(budget.Allocations))
	for i, a := range budget.Allocations {
		allocations[i] = BudgetAllocationModel{
			ID:              a.ID,
			BudgetID:        a.BudgetID,
			Category:        string(a.Category),
			AllocatedAmount: a.AllocatedAmount,
		}
	}

	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Name:        budget.Name,
		Period:      string(budget.Period),
		TotalBudget: budget.TotalBudget,
		StartDate:   budget.StartDate,
		EndDate:     budget.EndDate,
		IsActive:    budget.IsActive,
		Allocations: allocations,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
