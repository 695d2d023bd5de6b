// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	Type         string  `json:"type" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate   string  `json:"target_date" binding:"required"`
	Priority     int     `json:"priority" binding:"required,min=1,max=5"`
}

// UpdateGoalRequest represents the request body for goal update. Absent
// fields are left unchanged.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount,omitempty" binding:"omitempty,gte=0"`
	TargetDate    *string  `json:"target_date,omitempty"`
	Priority      *int     `json:"priority,omitempty" binding:"omitempty,min=1,max=5"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                             string     `json:"id"`
	Name                           string     `json:"name"`
	Type                           string     `json:"type"`
	TargetAmount                   float64    `json:"target_amount"`
	CurrentAmount                  float64    `json:"current_amount"`
	TargetDate                     string     `json:"target_date"`
	Priority                       int        `json:"priority"`
	IsCompleted                    bool       `json:"is_completed"`
	IsActive                       bool       `json:"is_active"`
	CompletedAt                    *time.Time `json:"completed_at,omitempty"`
	ProbabilitySuccess             *float64   `json:"probability_success,omitempty"`
	RecommendedMonthlyContribution *float64   `json:"recommended_monthly_contribution,omitempty"`
	CreatedAt                      time.Time  `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:                 g.ID.String(),
		Name:               g.Name,
		Type:               string(g.Type),
		TargetAmount:       g.TargetAmount.InexactFloat64(),
		CurrentAmount:      g.CurrentAmount.InexactFloat64(),
		TargetDate:         g.TargetDate.Format("2006-01-02"),
		Priority:           g.Priority,
		IsCompleted:        g.IsCompleted,
		IsActive:           g.IsActive,
		CompletedAt:        g.CompletedAt,
		ProbabilitySuccess: g.ProbabilitySuccess,
		CreatedAt:          g.CreatedAt,
	}

	if g.RecommendedMonthlyContribution != nil {
		amount := g.RecommendedMonthlyContribution.InexactFloat64()
		response.RecommendedMonthlyContribution = &amount
	}

	return response
}
