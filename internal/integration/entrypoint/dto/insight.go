// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// InsightResponse represents a single insight in API responses.
type InsightResponse struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Importance       int               `json:"importance"`
	ConfidenceScore  float64           `json:"confidence_score"`
	PotentialSavings *float64          `json:"potential_savings,omitempty"`
	ActionItems      []string          `json:"action_items"`
	DataPoints       map[string]string `json:"data_points"`
	IsRead           bool              `json:"is_read"`
	IsDismissed      bool              `json:"is_dismissed"`
	CreatedAt        time.Time         `json:"created_at"`
}

// InsightListResponse represents the response for listing insights.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// ToInsightResponse converts a domain Insight entity to an
// InsightResponse DTO.
func ToInsightResponse(i *entity.Insight) InsightResponse {
	response := InsightResponse{
		ID:              i.ID.String(),
		Type:            string(i.Type),
		Title:           i.Title,
		Description:     i.Description,
		Importance:      i.Importance,
		ConfidenceScore: i.ConfidenceScore,
		ActionItems:     i.ActionItems,
		DataPoints:      i.DataPoints,
		IsRead:          i.IsRead,
		IsDismissed:     i.IsDismissed,
		CreatedAt:       i.CreatedAt,
	}

	if i.PotentialSavings != nil {
		savings := i.PotentialSavings.InexactFloat64()
		response.PotentialSavings = &savings
	}

	return response
}

// ToInsightListResponse converts domain Insight entities to an
// InsightListResponse DTO.
func ToInsightListResponse(insights []*entity.Insight) InsightListResponse {
	responses := make([]InsightResponse, 0, len(insights))
	for _, i := range insights {
		responses = append(responses, ToInsightResponse(i))
	}
	return InsightListResponse{Insights: responses}
}
