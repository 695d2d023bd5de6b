// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName             string     `gorm:"type:varchar(100);not null"`
	PasswordHash         string     `gorm:"type:varchar(255);not null"`
	Phone                string     `gorm:"type:varchar(30)"`
	IsActive             bool       `gorm:"default:true"`
	SubscriptionTier     string     `gorm:"type:varchar(20);default:'free'"`
	InsightAlertsEnabled bool       `gorm:"default:true"`
	FinancialHealthScore *float64   `gorm:"type:decimal(5,2)"`
	LastAnalysisDate     *time.Time
	CreatedAt            time.Time  `gorm:"not null"`
	UpdatedAt            time.Time  `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                   m.ID,
		Email:                m.Email,
		FullName:             m.FullName,
		PasswordHash:         m.PasswordHash,
		Phone:                m.Phone,
		IsActive:             m.IsActive,
		SubscriptionTier:     entity.SubscriptionTier(m.SubscriptionTier),
		InsightAlertsEnabled: m.InsightAlertsEnabled,
		FinancialHealthScore: m.FinancialHealthScore,
		LastAnalysisDate:     m.LastAnalysisDate,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                   user.ID,
		Email:                user.Email,
		FullName:             user.FullName,
		PasswordHash:         user.PasswordHash,
		Phone:                user.Phone,
		IsActive:             user.IsActive,
		SubscriptionTier:     string(user.SubscriptionTier),
		InsightAlertsEnabled: user.InsightAlertsEnabled,
		FinancialHealthScore: user.FinancialHealthScore,
		LastAnalysisDate:     user.LastAnalysisDate,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
