package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finpulse/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrencyCode       string          `gorm:"type:varchar(3);default:'USD'"`
	Name               string          `gorm:"type:varchar(255);not null"`
	MerchantName       string          `gorm:"type:varchar(255);index"`
	Category           string          `gorm:"type:varchar(30);not null;index"`
	Date               time.Time       `gorm:"not null;index:idx_transactions_user_date"`
	IsPending          bool            `gorm:"default:false"`
	IsRecurring        bool            `gorm:"default:false"`
	RecurringFrequency string          `gorm:"type:varchar(10)"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		AccountID:          m.AccountID,
		Amount:             m.Amount,
		CurrencyCode:       m.CurrencyCode,
		Name:               m.Name,
		MerchantName:       m.MerchantName,
		Category:           entity.TransactionCategory(m.Category),
		Date:               m.Date,
		IsPending:          m.IsPending,
		IsRecurring:        m.IsRecurring,
		RecurringFrequency: entity.RecurringFrequency(m.RecurringFrequency),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if tx.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *tx.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:                 tx.ID,
		UserID:             tx.UserID,
		AccountID:          tx.AccountID,
		Amount:             tx.Amount,
		CurrencyCode:       tx.CurrencyCode,
		Name:               tx.Name,
		MerchantName:       tx.MerchantName,
		Category:           string(tx.Category),
		Date:               tx.Date,
		IsPending:          tx.IsPending,
		IsRecurring:        tx.IsRecurring,
		RecurringFrequency: string(tx.RecurringFrequency),
		CreatedAt:          tx.CreatedAt,
		UpdatedAt:          tx.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}
