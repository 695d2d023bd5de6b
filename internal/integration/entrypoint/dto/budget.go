// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// BudgetAllocationRequest represents one category allocation within a
// budget creation request.
type BudgetAllocationRequest struct {
	Category        string  `json:"category" binding:"required"`
	AllocatedAmount float64 `json:"allocated_amount" binding:"gte=0"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=255"`
	Period      string                    `json:"period" binding:"required,oneof=weekly monthly yearly"`
	TotalBudget float64                   `json:"total_budget" binding:"required,gt=0"`
	StartDate   string                    `json:"start_date" binding:"required"`
	EndDate     *string                   `json:"end_date,omitempty"`
	Allocations []BudgetAllocationRequest `json:"allocations"`
}

// BudgetAllocationResponse represents one category allocation in API
// responses.
type BudgetAllocationResponse struct {
	Category        string  `json:"category"`
	AllocatedAmount float64 `json:"allocated_amount"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Period      string                     `json:"period"`
	TotalBudget float64                    `json:"total_budget"`
	StartDate   string                     `json:"start_date"`
	EndDate     *string                    `json:"end_date,omitempty"`
	IsActive    bool                       `json:"is_active"`
	Allocations []BudgetAllocationResponse `json:"allocations"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetCategoryStateResponse represents the tracking state of one
// category within a budget.
type BudgetCategoryStateResponse struct {
	Category        string  `json:"category"`
	AllocatedAmount float64 `json:"allocated_amount"`
	SpentAmount     float64 `json:"spent_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	PercentageUsed  float64 `json:"percentage_used"`
	IsOverBudget    bool    `json:"is_over_budget"`
}

// BudgetTrackingResponse represents the recomputed tracking state for one
// budget.
type BudgetTrackingResponse struct {
	Budget          BudgetResponse                `json:"budget"`
	Categories      []BudgetCategoryStateResponse `json:"categories"`
	TotalSpent      float64                       `json:"total_spent"`
	RemainingBudget float64                       `json:"remaining_budget"`
	DaysRemaining   int                           `json:"days_remaining"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	allocations := make([]BudgetAllocationResponse, 0, len(b.Allocations))
	for _, a := range b.Allocations {
		allocations = append(allocations, BudgetAllocationResponse{
			Category:        string(a.Category),
			AllocatedAmount: a.AllocatedAmount.InexactFloat64(),
		})
	}

	response := BudgetResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		Period:      string(b.Period),
		TotalBudget: b.TotalBudget.InexactFloat64(),
		StartDate:   b.StartDate.Format("2006-01-02"),
		IsActive:    b.IsActive,
		Allocations: allocations,
		CreatedAt:   b.CreatedAt,
	}

	if b.EndDate != nil {
		dateStr := b.EndDate.Format("2006-01-02")
		response.EndDate = &dateStr
	}

	return response
}

// ToBudgetTrackingResponse converts a domain BudgetTracking to a
// BudgetTrackingResponse DTO.
func ToBudgetTrackingResponse(t *entity.BudgetTracking) BudgetTrackingResponse {
	categories := make([]BudgetCategoryStateResponse, 0, len(t.Categories))
	for _, c := range t.Categories {
		categories = append(categories, BudgetCategoryStateResponse{
			Category:        string(c.Category),
			AllocatedAmount: c.AllocatedAmount.InexactFloat64(),
			SpentAmount:     c.SpentAmount.InexactFloat64(),
			RemainingAmount: c.RemainingAmount.InexactFloat64(),
			PercentageUsed:  c.PercentageUsed,
			IsOverBudget:    c.IsOverBudget,
		})
	}

	return BudgetTrackingResponse{
		Budget:          ToBudgetResponse(t.Budget),
		Categories:      categories,
		TotalSpent:      t.TotalSpent.InexactFloat64(),
		RemainingBudget: t.RemainingBudget.InexactFloat64(),
		DaysRemaining:   t.DaysRemaining,
	}
}
