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

// healthScoreRepository implements the adapter.HealthScoreRepository interface.
type healthScoreRepository struct {
	db *gorm.DB
}

// NewHealthScoreRepository creates a new health score repository instance.
func NewHealthScoreRepository(db *gorm.DB) adapter.HealthScoreRepository {
	return &healthScoreRepository{
		db: db,
	}
}

// Create persists a new score and updates the owner's denormalized
// health fields in a single transaction.
func (r *healthScoreRepository) Create(ctx context.Context, score *entity.FinancialHealthScore) error {
	scoreModel := model.HealthScoreFromEntity(score)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scoreModel).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserModel{}).
			Where("id = ?", score.UserID).
			Updates(map[string]interface{}{
				"financial_health_score": score.OverallScore,
				"last_analysis_date":     score.CalculatedAt,
			}).Error
	})
}

// FindLatestByUserID retrieves the most recently calculated score.
func (r *healthScoreRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.FinancialHealthScore, error) {
	var scoreModel model.HealthScoreModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("calculated_at DESC").
		First(&scoreModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return scoreModel.ToEntity(), nil
}

// FindByUserID retrieves the score history, most recent first.
func (r *healthScoreRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FinancialHealthScore, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("calculated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var scoreModels []model.HealthScoreModel
	if err := query.Find(&scoreModels).Error; err != nil {
		return nil, err
	}

	scores := make([]*entity.FinancialHealthScore, len(scoreModels))
	for i, sm := range scoreModels {
		scores[i] = sm.ToEntity()
	}
	return scores, nil
}
