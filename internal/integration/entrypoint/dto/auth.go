// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID                   string     `json:"id"`
	Email                string     `json:"email"`
	FullName             string     `json:"full_name"`
	SubscriptionTier     string     `json:"subscription_tier"`
	InsightAlertsEnabled bool       `json:"insight_alerts_enabled"`
	FinancialHealthScore *float64   `json:"financial_health_score,omitempty"`
	LastAnalysisDate     *time.Time `json:"last_analysis_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                   user.ID.String(),
		Email:                user.Email,
		FullName:             user.FullName,
		SubscriptionTier:     string(user.SubscriptionTier),
		InsightAlertsEnabled: user.InsightAlertsEnabled,
		FinancialHealthScore: user.FinancialHealthScore,
		LastAnalysisDate:     user.LastAnalysisDate,
		CreatedAt:            user.CreatedAt,
	}
}
