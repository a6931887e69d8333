// Package item contains grocery catalog use cases.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// GetPriceHistoryInput represents the input for fetching an item's price history.
type GetPriceHistoryInput struct {
	ItemID uuid.UUID
}

// GetPriceHistoryOutput represents the output of fetching price history.
type GetPriceHistoryOutput struct {
	Item    *entity.GroceryItem
	Entries []*entity.PriceEntry
}

// GetPriceHistoryUseCase handles fetching an item's observed price history,
// most recent entries first.
type GetPriceHistoryUseCase struct {
	itemRepo  adapter.GroceryItemRepository
	priceRepo adapter.PriceHistoryRepository
}

// NewGetPriceHistoryUseCase creates a new GetPriceHistoryUseCase instance.
func NewGetPriceHistoryUseCase(itemRepo adapter.GroceryItemRepository, priceRepo adapter.PriceHistoryRepository) *GetPriceHistoryUseCase {
	return &GetPriceHistoryUseCase{
		itemRepo:  itemRepo,
		priceRepo: priceRepo,
	}
}

// Execute retrieves the price history for the item.
func (uc *GetPriceHistoryUseCase) Execute(ctx context.Context, input GetPriceHistoryInput) (*GetPriceHistoryOutput, error) {
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

	entries, err := uc.priceRepo.FindByItem(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}

	return &GetPriceHistoryOutput{
		Item:    item,
		Entries: entries,
	}, nil
}
