// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// RecordPurchaseInput represents the input for recording a purchase.
type RecordPurchaseInput struct {
	ItemID    uuid.UUID
	Quantity  float64
	TotalCost decimal.Decimal
	Date      time.Time
	StoreName string
}

// RecordPurchaseOutput represents the output of recording a purchase.
type RecordPurchaseOutput struct {
	Purchase *entity.Purchase
}

// RecordPurchaseUseCase handles recording a purchase and deriving a price
// history entry from it.
type RecordPurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	itemRepo     adapter.GroceryItemRepository
	priceRepo    adapter.PriceHistoryRepository
}

// NewRecordPurchaseUseCase creates a new RecordPurchaseUseCase instance.
func NewRecordPurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	itemRepo adapter.GroceryItemRepository,
	priceRepo adapter.PriceHistoryRepository,
) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
		priceRepo:    priceRepo,
	}
}

// Execute records the purchase.
func (uc *RecordPurchaseUseCase) Execute(ctx context.Context, input RecordPurchaseInput) (*RecordPurchaseOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeInvalidPurchaseQuantity,
			"purchase quantity must be greater than zero",
			domainerror.ErrInvalidPurchaseQuantity,
		)
	}

	if input.TotalCost.IsNegative() {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeInvalidPurchaseCost,
			"purchase cost cannot be negative",
			domainerror.ErrInvalidPurchaseCost,
		)
	}

	item, err := uc.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNotFound,
				"grocery item not found",
				domainerror.ErrItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	purchase := entity.NewPurchase(item.ID, input.Quantity, input.TotalCost, date, input.StoreName)

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	// Derive a unit price observation from the purchase. A failure here
	// degrades price history only, never the recorded purchase.
	if input.Quantity > 0 && !input.TotalCost.IsZero() {
		unitPrice := input.TotalCost.Div(decimal.NewFromFloat(input.Quantity))
		entry := entity.NewPriceEntry(item.ID, unitPrice, input.StoreName, date)
		if err := uc.priceRepo.Create(ctx, entry); err != nil {
			slog.Warn("Failed to record price history entry",
				"item_id", item.ID,
				"error", err,
			)
		}
	}

	return &RecordPurchaseOutput{Purchase: purchase}, nil
}
