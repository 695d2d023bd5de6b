// Package dashboard assembles the aggregated overview served to clients.
package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/domain/entity"
)

type stubAccountRepo struct{}

func (s *stubAccountRepo) Create(ctx context.Context, account *entity.Account) error { return nil }
func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return nil, nil
}
func (s *stubAccountRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	return nil, nil
}
func (s *stubAccountRepo) Update(ctx context.Context, account *entity.Account) error { return nil }
func (s *stubAccountRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type stubTransactionRepo struct{}

func (s *stubTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}
func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) FindByUserID(ctx context.Context, userID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.Transaction, int64, error) {
	return nil, 0, nil
}
func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubBudgetRepo struct{}

func (s *stubBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }
func (s *stubBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (s *stubBudgetRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}
func (s *stubBudgetRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}
func (s *stubBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubGoalRepo struct{}

func (s *stubGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return nil }
func (s *stubGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}
func (s *stubGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}
func (s *stubGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}
func (s *stubGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return nil }
func (s *stubGoalRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type stubScoreRepo struct{}

func (s *stubScoreRepo) Create(ctx context.Context, score *entity.FinancialHealthScore) error {
	return nil
}
func (s *stubScoreRepo) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.FinancialHealthScore, error) {
	return nil, nil
}
func (s *stubScoreRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FinancialHealthScore, error) {
	return nil, nil
}

type stubInsightRepo struct{}

func (s *stubInsightRepo) CreateBulk(ctx context.Context, insights []*entity.Insight) error {
	return nil
}
func (s *stubInsightRepo) FindByUserID(ctx context.Context, userID uuid.UUID, includeDismissed bool, limit int) ([]*entity.Insight, error) {
	return nil, nil
}
func (s *stubInsightRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Insight, error) {
	return nil, nil
}
func (s *stubInsightRepo) MarkRead(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubInsightRepo) Dismiss(ctx context.Context, id uuid.UUID) error  { return nil }

// recordingCache captures Set calls and serves a canned Get payload.
type recordingCache struct {
	stored  []byte
	lastTTL time.Duration
	payload []byte
}

func (c *recordingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.payload == nil {
		return nil, false, nil
	}
	return c.payload, true, nil
}

func (c *recordingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.stored = value
	c.lastTTL = ttl
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, key string) error { return nil }

func newUseCase(cache adapter.CacheService, ttl time.Duration) *GetDashboardUseCase {
	return NewGetDashboardUseCase(
		&stubAccountRepo{}, &stubTransactionRepo{}, &stubBudgetRepo{}, &stubGoalRepo{},
		&stubScoreRepo{}, &stubInsightRepo{}, cache, ttl, config.EngineConfig{
			CashFlowWindowDays:     30,
			HistoryWindowDays:      90,
			TransactionWindowLimit: 500,
		},
	)
}

func TestGetDashboard_CachesWithConfiguredTTL(t *testing.T) {
	cache := &recordingCache{}
	ttl := 7 * time.Minute
	uc := newUseCase(cache, ttl)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.FromCache {
		t.Error("first assembly must not report FromCache")
	}
	if cache.stored == nil {
		t.Fatal("dashboard was not written to the cache")
	}
	if cache.lastTTL != ttl {
		t.Errorf("cache TTL = %s, want %s", cache.lastTTL, ttl)
	}
}

func TestGetDashboard_ServesCachedCopy(t *testing.T) {
	cached := &Dashboard{GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	payload, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	uc := newUseCase(&recordingCache{payload: payload}, time.Minute)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !out.FromCache {
		t.Error("cache hit must report FromCache")
	}
	if !out.Dashboard.GeneratedAt.Equal(cached.GeneratedAt) {
		t.Errorf("GeneratedAt = %s, want cached %s", out.Dashboard.GeneratedAt, cached.GeneratedAt)
	}
}
