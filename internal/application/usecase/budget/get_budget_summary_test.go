// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// fakePurchaseRepository serves canned purchases for summary tests.
type fakePurchaseRepository struct {
	purchases []*entity.PurchaseWithItem
	rangeErr  error
}

func (f *fakePurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return nil
}

func (f *fakePurchaseRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Purchase, error) {
	return nil, nil
}

func (f *fakePurchaseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.PurchaseWithItem, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	var inRange []*entity.PurchaseWithItem
	for _, p := range f.purchases {
		if !p.Purchase.Date.Before(start) && !p.Purchase.Date.After(end) {
			inRange = append(inRange, p)
		}
	}
	return inRange, nil
}

func purchaseOf(item *entity.GroceryItem, cost int64, day time.Time) *entity.PurchaseWithItem {
	return &entity.PurchaseWithItem{
		Purchase: entity.NewPurchase(item.ID, 1, decimal.NewFromInt(cost), day, "Local store"),
		Item:     item,
	}
}

func TestGetBudgetSummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	dairy := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
	produce := entity.NewGroceryItem("Apples", "", "Produce", "kg", "", nil)
	unlabeled := entity.NewGroceryItem("Batteries", "", "", "unit", "", nil)

	t.Run("aggregates totals and category breakdown", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		b := entity.NewBudget("March", decimal.NewFromInt(500), date(2026, 3, 1), date(2026, 3, 31))
		budgetRepo.budgets[b.ID] = b

		purchaseRepo := &fakePurchaseRepository{
			purchases: []*entity.PurchaseWithItem{
				purchaseOf(dairy, 30, date(2026, 3, 2)),
				purchaseOf(dairy, 20, date(2026, 3, 5)),
				purchaseOf(produce, 50, date(2026, 3, 4)),
			},
		}

		uc := NewGetBudgetSummaryUseCase(budgetRepo, purchaseRepo)

		output, err := uc.Execute(ctx, GetBudgetSummaryInput{
			BudgetID: b.ID,
			Now:      date(2026, 3, 11),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s := output.Summary
		if !s.TotalSpent.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total spent 100, got %s", s.TotalSpent)
		}
		if !s.RemainingAmount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected remaining 400, got %s", s.RemainingAmount)
		}
		if s.PercentageUsed != 20 {
			t.Errorf("expected 20%% used, got %v", s.PercentageUsed)
		}
		if !s.SpendingByCategory["Dairy"].Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected Dairy spend 50, got %s", s.SpendingByCategory["Dairy"])
		}
		if !s.SpendingByCategory["Produce"].Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected Produce spend 50, got %s", s.SpendingByCategory["Produce"])
		}

		// 10 whole days have passed, 100 spent.
		if !s.DailyAverage.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected daily average 10, got %s", s.DailyAverage)
		}
		// 30 total days at 10 per day.
		if !s.ProjectedTotal.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected projected total 300, got %s", s.ProjectedTotal)
		}
		if !s.IsOnTrack {
			t.Error("expected budget to be on track")
		}
		if s.DaysRemaining != 20 {
			t.Errorf("expected 20 days remaining, got %d", s.DaysRemaining)
		}
	})

	t.Run("uncategorized purchases group under the fallback label", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		b := entity.NewBudget("March", decimal.NewFromInt(100), date(2026, 3, 1), date(2026, 3, 31))
		budgetRepo.budgets[b.ID] = b

		purchaseRepo := &fakePurchaseRepository{
			purchases: []*entity.PurchaseWithItem{
				purchaseOf(unlabeled, 15, date(2026, 3, 3)),
			},
		}

		uc := NewGetBudgetSummaryUseCase(budgetRepo, purchaseRepo)

		output, err := uc.Execute(ctx, GetBudgetSummaryInput{
			BudgetID: b.ID,
			Now:      date(2026, 3, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.SpendingByCategory["Uncategorized"].Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected Uncategorized spend 15, got %s", output.Summary.SpendingByCategory["Uncategorized"])
		}
	})

	t.Run("zero spend yields zero percentage and zero projection", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		b := entity.NewBudget("March", decimal.NewFromInt(100), date(2026, 3, 1), date(2026, 3, 31))
		budgetRepo.budgets[b.ID] = b

		uc := NewGetBudgetSummaryUseCase(budgetRepo, &fakePurchaseRepository{})

		output, err := uc.Execute(ctx, GetBudgetSummaryInput{
			BudgetID: b.ID,
			Now:      date(2026, 3, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s := output.Summary
		if s.PercentageUsed != 0 {
			t.Errorf("expected 0%% used, got %v", s.PercentageUsed)
		}
		if !s.ProjectedTotal.IsZero() {
			t.Errorf("expected zero projection, got %s", s.ProjectedTotal)
		}
		if !s.IsOnTrack {
			t.Error("expected untouched budget to be on track")
		}
	})

	t.Run("summary on the start day floors elapsed days at one", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		b := entity.NewBudget("March", decimal.NewFromInt(100), date(2026, 3, 1), date(2026, 3, 31))
		budgetRepo.budgets[b.ID] = b

		purchaseRepo := &fakePurchaseRepository{
			purchases: []*entity.PurchaseWithItem{
				purchaseOf(dairy, 20, date(2026, 3, 1)),
			},
		}

		uc := NewGetBudgetSummaryUseCase(budgetRepo, purchaseRepo)

		output, err := uc.Execute(ctx, GetBudgetSummaryInput{
			BudgetID: b.ID,
			Now:      date(2026, 3, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.DailyAverage.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected daily average 20 on start day, got %s", output.Summary.DailyAverage)
		}
	})

	t.Run("overspending projection flags off track", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		b := entity.NewBudget("March", decimal.NewFromInt(100), date(2026, 3, 1), date(2026, 3, 31))
		budgetRepo.budgets[b.ID] = b

		purchaseRepo := &fakePurchaseRepository{
			purchases: []*entity.PurchaseWithItem{
				purchaseOf(dairy, 50, date(2026, 3, 2)),
			},
		}

		uc := NewGetBudgetSummaryUseCase(budgetRepo, purchaseRepo)

		output, err := uc.Execute(ctx, GetBudgetSummaryInput{
			BudgetID: b.ID,
			Now:      date(2026, 3, 6),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Summary.IsOnTrack {
			t.Error("expected budget to be off track")
		}
	})

	t.Run("unknown budget returns not found", func(t *testing.T) {
		uc := NewGetBudgetSummaryUseCase(newFakeBudgetRepository(), &fakePurchaseRepository{})

		_, err := uc.Execute(ctx, GetBudgetSummaryInput{
			BudgetID: uuid.New(),
			Now:      date(2026, 3, 10),
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("expected BudgetError, got %v", err)
		}
		if budgetErr.Code != domainerror.ErrCodeBudgetNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetNotFound, budgetErr.Code)
		}
	})
}
