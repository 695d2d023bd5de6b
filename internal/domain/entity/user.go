// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier represents the user's subscription level.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierPro     SubscriptionTier = "pro"
)

// User represents a user in the FinPulse system. FinancialHealthScore and
// LastAnalysisDate are denormalized from the latest scoring run and are
// updated in the same transaction that persists a new score.
type User struct {
	ID                   uuid.UUID
	Email                string
	FullName             string
	PasswordHash         string
	Phone                string
	IsActive             bool
	SubscriptionTier     SubscriptionTier
	InsightAlertsEnabled bool
	FinancialHealthScore *float64
	LastAnalysisDate     *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, fullName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                   uuid.New(),
		Email:                email,
		FullName:             fullName,
		PasswordHash:         passwordHash,
		IsActive:             true,
		SubscriptionTier:     TierFree,
		InsightAlertsEnabled: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
