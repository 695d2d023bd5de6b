package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
	"github.com/finpulse/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{
		db: db,
	}
}

// CreateBulk persists a batch of insights atomically.
func (r *insightRepository) CreateBulk(ctx context.Context, insights []*entity.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	insightModels := make([]*model.InsightModel, len(insights))
	for i, ins := range insights {
		insightModels[i] = model.InsightFromEntity(ins)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(insightModels).Error
	})
}

// FindByUserID retrieves insights for a user, most recent first.
func (r *insightRepository) FindByUserID(ctx context.Context, userID uuid.UUID, includeDismissed bool, limit int) ([]*entity.Insight, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeDismissed {
		query = query.Where("is_dismissed = ?", false)
	}
	query = query.Order("created_at DESC, importance ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var insightModels []model.InsightModel
	if err := query.Find(&insightModels).Error; err != nil {
		return nil, err
	}

	insights := make([]*entity.Insight, len(insightModels))
	for i, im := range insightModels {
		insights[i] = im.ToEntity()
	}
	return insights, nil
}

// FindByID retrieves an insight by its ID.
func (r *insightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Insight, error) {
	var insightModel model.InsightModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&insightModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return insightModel.ToEntity(), nil
}

// MarkRead sets the read flag on an insight.
func (r *insightRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.InsightModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	return result.Error
}

// Dismiss sets the dismissed flag on an insight.
func (r *insightRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.InsightModel{}).
		Where("id = ?", id).
		Update("is_dismissed", true)
	return result.Error
}
