// Package budget contains budget-related use cases.
package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/backend/internal/domain/entity"
	domainerror "github.com/finpulse/backend/internal/domain/error"
)

func monthlyBudget(start time.Time, allocations map[entity.TransactionCategory]string) *entity.Budget {
	b := entity.NewBudget(
		uuid.New(),
		"monthly budget",
		entity.BudgetPeriodMonthly,
		decimal.RequireFromString("1000"),
		start,
		nil,
	)
	for category, amount := range allocations {
		b.Allocations = append(b.Allocations, entity.BudgetAllocation{
			ID:              uuid.New(),
			BudgetID:        b.ID,
			Category:        category,
			AllocatedAmount: decimal.RequireFromString(amount),
		})
	}
	return b
}

func expense(amount string, category entity.TransactionCategory, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestTracker_Track_CategoryStates(t *testing.T) {
	tracker := NewTracker()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 10)

	b := monthlyBudget(start, map[entity.TransactionCategory]string{
		entity.CategoryFoodDining: "500",
	})

	transactions := []*entity.Transaction{
		expense("-300", entity.CategoryFoodDining, start.AddDate(0, 0, 3)),
		expense("-300", entity.CategoryFoodDining, start.AddDate(0, 0, 7)),
	}

	tracking, err := tracker.Track(b, transactions, now)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}

	if len(tracking.Categories) != 1 {
		t.Fatalf("expected 1 category state, got %d", len(tracking.Categories))
	}

	state := tracking.Categories[0]
	if got, want := state.SpentAmount.String(), "600"; got != want {
		t.Errorf("SpentAmount = %s, want %s", got, want)
	}
	if got, want := state.RemainingAmount.String(), "-100"; got != want {
		t.Errorf("RemainingAmount = %s, want %s", got, want)
	}
	if state.PercentageUsed != 120 {
		t.Errorf("PercentageUsed = %f, want 120", state.PercentageUsed)
	}
	if !state.IsOverBudget {
		t.Error("expected IsOverBudget to be true")
	}

	if got, want := tracking.TotalSpent.String(), "600"; got != want {
		t.Errorf("TotalSpent = %s, want %s", got, want)
	}
	if got, want := tracking.RemainingBudget.String(), "400"; got != want {
		t.Errorf("RemainingBudget = %s, want %s", got, want)
	}
}

func TestTracker_Track_UnallocatedBucket(t *testing.T) {
	tracker := NewTracker()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 5)

	b := monthlyBudget(start, map[entity.TransactionCategory]string{
		entity.CategoryFoodDining: "500",
	})

	transactions := []*entity.Transaction{
		expense("-100", entity.CategoryFoodDining, start.AddDate(0, 0, 1)),
		expense("-250", entity.CategoryTravel, start.AddDate(0, 0, 2)),
	}

	tracking, err := tracker.Track(b, transactions, now)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}

	if len(tracking.Categories) != 2 {
		t.Fatalf("expected 2 category states, got %d", len(tracking.Categories))
	}

	bucket := tracking.Categories[1]
	if bucket.Category != entity.UnallocatedCategory {
		t.Fatalf("expected unallocated bucket, got %s", bucket.Category)
	}
	if got, want := bucket.SpentAmount.String(), "250"; got != want {
		t.Errorf("unallocated SpentAmount = %s, want %s", got, want)
	}
	// Zero allocation keeps percentage at zero rather than dividing.
	if bucket.PercentageUsed != 0 {
		t.Errorf("unallocated PercentageUsed = %f, want 0", bucket.PercentageUsed)
	}
	if !bucket.IsOverBudget {
		t.Error("unallocated spend exceeds its zero allocation and must flag over budget")
	}
}

func TestTracker_Track_ZeroAllocationOverBudget(t *testing.T) {
	tracker := NewTracker()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 5)

	b := monthlyBudget(start, map[entity.TransactionCategory]string{
		entity.CategoryFoodDining: "0",
	})

	tracking, err := tracker.Track(b, []*entity.Transaction{
		expense("-100", entity.CategoryFoodDining, start.AddDate(0, 0, 1)),
	}, now)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}

	state := tracking.Categories[0]
	if !state.IsOverBudget {
		t.Error("spend against a zero allocation must flag over budget")
	}
	if state.PercentageUsed != 0 {
		t.Errorf("PercentageUsed = %f, want 0", state.PercentageUsed)
	}
	if got, want := state.RemainingAmount.String(), "-100"; got != want {
		t.Errorf("RemainingAmount = %s, want %s", got, want)
	}
}

func TestTracker_Track_WindowFiltering(t *testing.T) {
	tracker := NewTracker()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 15)

	b := monthlyBudget(start, map[entity.TransactionCategory]string{
		entity.CategoryFoodDining: "500",
	})

	pending := expense("-50", entity.CategoryFoodDining, start.AddDate(0, 0, 2))
	pending.IsPending = true

	transactions := []*entity.Transaction{
		expense("-100", entity.CategoryFoodDining, start.AddDate(0, 0, -1)), // before window
		expense("-100", entity.CategoryFoodDining, start.AddDate(0, 1, 2)),  // after window
		expense("200", entity.CategoryIncome, start.AddDate(0, 0, 3)),       // income, not spend
		pending,
		expense("-75", entity.CategoryFoodDining, start.AddDate(0, 0, 4)),
	}

	tracking, err := tracker.Track(b, transactions, now)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}

	if got, want := tracking.TotalSpent.String(), "75"; got != want {
		t.Errorf("TotalSpent = %s, want %s", got, want)
	}
}

func TestTracker_Track_DaysRemaining(t *testing.T) {
	tracker := NewTracker()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	b := monthlyBudget(start, nil)

	t.Run("mid period", func(t *testing.T) {
		tracking, err := tracker.Track(b, nil, start.AddDate(0, 0, 20))
		if err != nil {
			t.Fatalf("Track returned error: %v", err)
		}
		if tracking.DaysRemaining != 10 {
			t.Errorf("DaysRemaining = %d, want 10", tracking.DaysRemaining)
		}
	})

	t.Run("expired period floors at zero", func(t *testing.T) {
		tracking, err := tracker.Track(b, nil, start.AddDate(0, 2, 0))
		if err != nil {
			t.Fatalf("Track returned error: %v", err)
		}
		if tracking.DaysRemaining != 0 {
			t.Errorf("DaysRemaining = %d, want 0", tracking.DaysRemaining)
		}
	})
}

func TestTracker_Track_ValidationErrors(t *testing.T) {
	tracker := NewTracker()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 1)

	t.Run("end before start", func(t *testing.T) {
		end := start.AddDate(0, 0, -1)
		b := monthlyBudget(start, nil)
		b.EndDate = &end

		_, err := tracker.Track(b, nil, now)
		if !errors.Is(err, domainerror.ErrInvalidBudgetDateRange) {
			t.Errorf("expected ErrInvalidBudgetDateRange, got %v", err)
		}
	})

	t.Run("negative allocation", func(t *testing.T) {
		b := monthlyBudget(start, map[entity.TransactionCategory]string{
			entity.CategoryFoodDining: "-10",
		})

		_, err := tracker.Track(b, nil, now)
		if !errors.Is(err, domainerror.ErrNegativeAllocation) {
			t.Errorf("expected ErrNegativeAllocation, got %v", err)
		}
	})

	t.Run("duplicate category", func(t *testing.T) {
		b := monthlyBudget(start, nil)
		for i := 0; i < 2; i++ {
			b.Allocations = append(b.Allocations, entity.BudgetAllocation{
				ID:              uuid.New(),
				BudgetID:        b.ID,
				Category:        entity.CategoryFoodDining,
				AllocatedAmount: decimal.RequireFromString("100"),
			})
		}

		_, err := tracker.Track(b, nil, now)
		if !errors.Is(err, domainerror.ErrDuplicateAllocationCategory) {
			t.Errorf("expected ErrDuplicateAllocationCategory, got %v", err)
		}
	})
}
