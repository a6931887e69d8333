// Package forecast contains replenishment forecasting use cases.
package forecast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// fakeCatalog serves a fixed item list.
type fakeCatalog struct {
	items []*entity.GroceryItem
	err   error
}

func (f *fakeCatalog) Create(ctx context.Context, item *entity.GroceryItem) error { return nil }

func (f *fakeCatalog) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error) {
	return nil, nil
}

func (f *fakeCatalog) FindAll(ctx context.Context) ([]*entity.GroceryItem, error) {
	return f.items, f.err
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]*entity.GroceryItem, error) {
	return nil, nil
}

// fakeHistory serves per-item purchase histories.
type fakeHistory struct {
	byItem map[uuid.UUID][]*entity.Purchase
	errFor map[uuid.UUID]error
}

func (f *fakeHistory) Create(ctx context.Context, purchase *entity.Purchase) error { return nil }

func (f *fakeHistory) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Purchase, error) {
	if err := f.errFor[itemID]; err != nil {
		return nil, err
	}
	return f.byItem[itemID], nil
}

func (f *fakeHistory) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.PurchaseWithItem, error) {
	return nil, nil
}

// fakePredictor returns a canned prediction keyed by item name.
type fakePredictor struct {
	byName map[string]*entity.PurchasePrediction
	errFor map[string]error
}

func (f *fakePredictor) PredictNextPurchase(ctx context.Context, itemName, category string, history []*entity.Purchase) (*entity.PurchasePrediction, error) {
	if err := f.errFor[itemName]; err != nil {
		return nil, err
	}
	return f.byName[itemName], nil
}

// fakeScheduler records scheduled reminders.
type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []string
	err       error
}

func (f *fakeScheduler) ScheduleReminder(ctx context.Context, item *entity.GroceryItem, date time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, item.Name)
	return nil
}

func historyOf(itemID uuid.UUID, days ...int) []*entity.Purchase {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	purchases := make([]*entity.Purchase, len(days))
	for i, d := range days {
		purchases[i] = entity.NewPurchase(itemID, 1, decimal.NewFromInt(10), base.AddDate(0, 0, d), "")
	}
	return purchases
}

func prediction(daysUntil int) *entity.PurchasePrediction {
	return &entity.PurchasePrediction{
		PredictedDate:     time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysUntil),
		DaysUntilPurchase: daysUntil,
		Confidence:        0.8,
		Strategy:          "interval",
	}
}

func TestForecastReplenishmentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	milk := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
	bread := entity.NewGroceryItem("Bread", "", "Bakery", "unit", "", nil)
	coffee := entity.NewGroceryItem("Coffee", "", "Pantry", "kg", "", nil)

	t.Run("returns predictions within the window ordered soonest first", func(t *testing.T) {
		catalog := &fakeCatalog{items: []*entity.GroceryItem{milk, bread, coffee}}
		history := &fakeHistory{byItem: map[uuid.UUID][]*entity.Purchase{
			milk.ID:   historyOf(milk.ID, 0, 3, 6),
			bread.ID:  historyOf(bread.ID, 0, 2),
			coffee.ID: historyOf(coffee.ID, 0, 14),
		}}
		predictor := &fakePredictor{byName: map[string]*entity.PurchasePrediction{
			"Milk":   prediction(5),
			"Bread":  prediction(1),
			"Coffee": prediction(14),
		}}
		scheduler := &fakeScheduler{}

		uc := NewForecastReplenishmentUseCase(catalog, history, predictor, scheduler)

		output, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Predictions) != 2 {
			t.Fatalf("expected 2 predictions within the window, got %d", len(output.Predictions))
		}
		if output.Predictions[0].Item.Name != "Bread" {
			t.Errorf("expected Bread first, got %s", output.Predictions[0].Item.Name)
		}
		if output.Predictions[1].Item.Name != "Milk" {
			t.Errorf("expected Milk second, got %s", output.Predictions[1].Item.Name)
		}
	})

	t.Run("items with short history are skipped", func(t *testing.T) {
		catalog := &fakeCatalog{items: []*entity.GroceryItem{milk}}
		history := &fakeHistory{byItem: map[uuid.UUID][]*entity.Purchase{
			milk.ID: historyOf(milk.ID, 0),
		}}
		predictor := &fakePredictor{byName: map[string]*entity.PurchasePrediction{
			"Milk": prediction(1),
		}}

		uc := NewForecastReplenishmentUseCase(catalog, history, predictor, &fakeScheduler{})

		output, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Predictions) != 0 {
			t.Errorf("expected no predictions for single-purchase item, got %d", len(output.Predictions))
		}
	})

	t.Run("per-item failures drop the item but not the batch", func(t *testing.T) {
		catalog := &fakeCatalog{items: []*entity.GroceryItem{milk, bread, coffee}}
		history := &fakeHistory{
			byItem: map[uuid.UUID][]*entity.Purchase{
				milk.ID:   historyOf(milk.ID, 0, 3),
				coffee.ID: historyOf(coffee.ID, 0, 3),
			},
			errFor: map[uuid.UUID]error{
				bread.ID: errors.New("connection lost"),
			},
		}
		predictor := &fakePredictor{
			byName: map[string]*entity.PurchasePrediction{
				"Milk": prediction(2),
			},
			errFor: map[string]error{
				"Coffee": errors.New("strategy unavailable"),
			},
		}

		uc := NewForecastReplenishmentUseCase(catalog, history, predictor, &fakeScheduler{})

		output, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Predictions) != 1 {
			t.Fatalf("expected 1 prediction, got %d", len(output.Predictions))
		}
		if output.Predictions[0].Item.Name != "Milk" {
			t.Errorf("expected Milk, got %s", output.Predictions[0].Item.Name)
		}
	})

	t.Run("overdue predictions are included", func(t *testing.T) {
		catalog := &fakeCatalog{items: []*entity.GroceryItem{milk}}
		history := &fakeHistory{byItem: map[uuid.UUID][]*entity.Purchase{
			milk.ID: historyOf(milk.ID, 0, 3),
		}}
		predictor := &fakePredictor{byName: map[string]*entity.PurchasePrediction{
			"Milk": prediction(-2),
		}}

		uc := NewForecastReplenishmentUseCase(catalog, history, predictor, &fakeScheduler{})

		output, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Predictions) != 1 {
			t.Fatalf("expected overdue prediction to be included, got %d", len(output.Predictions))
		}
	})

	t.Run("reminders are scheduled only within the threshold", func(t *testing.T) {
		catalog := &fakeCatalog{items: []*entity.GroceryItem{milk, bread}}
		history := &fakeHistory{byItem: map[uuid.UUID][]*entity.Purchase{
			milk.ID:  historyOf(milk.ID, 0, 3),
			bread.ID: historyOf(bread.ID, 0, 3),
		}}
		predictor := &fakePredictor{byName: map[string]*entity.PurchasePrediction{
			"Milk":  prediction(2),
			"Bread": prediction(5),
		}}
		scheduler := &fakeScheduler{}

		uc := NewForecastReplenishmentUseCase(catalog, history, predictor, scheduler)

		if _, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(scheduler.scheduled) != 1 || scheduler.scheduled[0] != "Milk" {
			t.Errorf("expected a reminder only for Milk, got %v", scheduler.scheduled)
		}
	})

	t.Run("scheduling failure does not fail the forecast", func(t *testing.T) {
		catalog := &fakeCatalog{items: []*entity.GroceryItem{milk}}
		history := &fakeHistory{byItem: map[uuid.UUID][]*entity.Purchase{
			milk.ID: historyOf(milk.ID, 0, 3),
		}}
		predictor := &fakePredictor{byName: map[string]*entity.PurchasePrediction{
			"Milk": prediction(1),
		}}
		scheduler := &fakeScheduler{err: errors.New("queue unavailable")}

		uc := NewForecastReplenishmentUseCase(catalog, history, predictor, scheduler)

		output, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Predictions) != 1 {
			t.Errorf("expected prediction despite scheduling failure, got %d", len(output.Predictions))
		}
	})

	t.Run("catalog failure fails the forecast", func(t *testing.T) {
		catalog := &fakeCatalog{err: errors.New("connection lost")}
		uc := NewForecastReplenishmentUseCase(catalog, &fakeHistory{}, &fakePredictor{}, &fakeScheduler{})

		if _, err := uc.Execute(ctx, ForecastReplenishmentInput{Now: time.Now()}); err == nil {
			t.Error("expected error when catalog fetch fails")
		}
	})
}
