// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsightType tags the rule family that produced an insight.
type InsightType string

const (
	InsightTypeSpendingPattern      InsightType = "spending_pattern"
	InsightTypeSubscriptionReview   InsightType = "subscription_review"
	InsightTypeGoalAdvice           InsightType = "goal_advice"
	InsightTypeBudgetRecommendation InsightType = "budget_recommendation"
)

// Insight importance bounds. 1 is the most important, 5 the least.
const (
	InsightImportanceHighest = 1
	InsightImportanceLowest  = 5
)

// Insight represents a single actionable observation surfaced to the
// user. Insights are created in batches by one generation run; the
// read/dismissed flags are mutated only by the consumer, never by the
// generator, and survive regeneration.
type Insight struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Type             InsightType
	Title            string
	Description      string
	Importance       int
	ConfidenceScore  float64
	PotentialSavings *decimal.Decimal
	ActionItems      []string
	DataPoints       map[string]string
	IsRead           bool
	IsDismissed      bool
	CreatedAt        time.Time
}

// NewInsight creates a new Insight entity.
func NewInsight(userID uuid.UUID, insightType InsightType, title, description string) *Insight {
	return &Insight{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        insightType,
		Title:       title,
		Description: description,
		Importance:  InsightImportanceLowest,
		DataPoints:  make(map[string]string),
		CreatedAt:   time.Now().UTC(),
	}
}

// DedupeKey returns the identity used to match a freshly generated
// insight against previously stored ones: type, title, and the sorted
// data point keys.
func (i *Insight) DedupeKey() string {
	keys := make([]string, 0, len(i.DataPoints))
	for k := range i.DataPoints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return string(i.Type) + "|" + i.Title + "|" + strings.Join(keys, ",")
}
