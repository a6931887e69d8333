// Package purchase contains purchase-related use cases.
package purchase

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

type fakePurchaseStore struct {
	purchases []*entity.Purchase
	createErr error
}

func (f *fakePurchaseStore) Create(ctx context.Context, purchase *entity.Purchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakePurchaseStore) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Purchase, error) {
	return f.purchases, nil
}

func (f *fakePurchaseStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.PurchaseWithItem, error) {
	return nil, nil
}

type fakeItemStore struct {
	items map[uuid.UUID]*entity.GroceryItem
}

func (f *fakeItemStore) Create(ctx context.Context, item *entity.GroceryItem) error { return nil }

func (f *fakeItemStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeItemStore) FindAll(ctx context.Context) ([]*entity.GroceryItem, error) { return nil, nil }

func (f *fakeItemStore) Search(ctx context.Context, query string) ([]*entity.GroceryItem, error) {
	return nil, nil
}

type fakePriceStore struct {
	entries   []*entity.PriceEntry
	createErr error
}

func (f *fakePriceStore) Create(ctx context.Context, entry *entity.PriceEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakePriceStore) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.PriceEntry, error) {
	return f.entries, nil
}

func TestRecordPurchaseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	milk := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
	itemStore := &fakeItemStore{items: map[uuid.UUID]*entity.GroceryItem{milk.ID: milk}}

	t.Run("records the purchase and derives a unit price entry", func(t *testing.T) {
		purchaseStore := &fakePurchaseStore{}
		priceStore := &fakePriceStore{}
		uc := NewRecordPurchaseUseCase(purchaseStore, itemStore, priceStore)

		output, err := uc.Execute(ctx, RecordPurchaseInput{
			ItemID:    milk.ID,
			Quantity:  2,
			TotalCost: decimal.NewFromInt(5),
			Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			StoreName: "Corner shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Purchase.ItemID != milk.ID {
			t.Error("expected purchase to reference the item")
		}
		if len(priceStore.entries) != 1 {
			t.Fatalf("expected 1 derived price entry, got %d", len(priceStore.entries))
		}
		if !priceStore.entries[0].Price.Equal(decimal.NewFromFloat(2.5)) {
			t.Errorf("expected unit price 2.5, got %s", priceStore.entries[0].Price)
		}
		if priceStore.entries[0].StoreName != "Corner shop" {
			t.Errorf("expected store name to carry over, got %s", priceStore.entries[0].StoreName)
		}
	})

	t.Run("price entry failure does not fail the purchase", func(t *testing.T) {
		purchaseStore := &fakePurchaseStore{}
		priceStore := &fakePriceStore{createErr: errors.New("connection lost")}
		uc := NewRecordPurchaseUseCase(purchaseStore, itemStore, priceStore)

		output, err := uc.Execute(ctx, RecordPurchaseInput{
			ItemID:    milk.ID,
			Quantity:  1,
			TotalCost: decimal.NewFromInt(3),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Purchase == nil {
			t.Error("expected purchase to be recorded despite price entry failure")
		}
	})

	t.Run("zero total cost records no price entry", func(t *testing.T) {
		purchaseStore := &fakePurchaseStore{}
		priceStore := &fakePriceStore{}
		uc := NewRecordPurchaseUseCase(purchaseStore, itemStore, priceStore)

		if _, err := uc.Execute(ctx, RecordPurchaseInput{
			ItemID:    milk.ID,
			Quantity:  1,
			TotalCost: decimal.Zero,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(priceStore.entries) != 0 {
			t.Errorf("expected no price entry for free purchase, got %d", len(priceStore.entries))
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		uc := NewRecordPurchaseUseCase(&fakePurchaseStore{}, itemStore, &fakePriceStore{})

		_, err := uc.Execute(ctx, RecordPurchaseInput{
			ItemID:    milk.ID,
			Quantity:  0,
			TotalCost: decimal.NewFromInt(3),
		})

		var itemErr *domainerror.ItemError
		if !errors.As(err, &itemErr) {
			t.Fatalf("expected ItemError, got %v", err)
		}
		if itemErr.Code != domainerror.ErrCodeInvalidPurchaseQuantity {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPurchaseQuantity, itemErr.Code)
		}
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		uc := NewRecordPurchaseUseCase(&fakePurchaseStore{}, itemStore, &fakePriceStore{})

		_, err := uc.Execute(ctx, RecordPurchaseInput{
			ItemID:    milk.ID,
			Quantity:  1,
			TotalCost: decimal.NewFromInt(-1),
		})

		var itemErr *domainerror.ItemError
		if !errors.As(err, &itemErr) {
			t.Fatalf("expected ItemError, got %v", err)
		}
		if itemErr.Code != domainerror.ErrCodeInvalidPurchaseCost {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPurchaseCost, itemErr.Code)
		}
	})

	t.Run("unknown item is rejected", func(t *testing.T) {
		uc := NewRecordPurchaseUseCase(&fakePurchaseStore{}, itemStore, &fakePriceStore{})

		_, err := uc.Execute(ctx, RecordPurchaseInput{
			ItemID:    uuid.New(),
			Quantity:  1,
			TotalCost: decimal.NewFromInt(3),
		})

		var itemErr *domainerror.ItemError
		if !errors.As(err, &itemErr) {
			t.Fatalf("expected ItemError, got %v", err)
		}
		if itemErr.Code != domainerror.ErrCodeItemNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeItemNotFound, itemErr.Code)
		}
	})
}
