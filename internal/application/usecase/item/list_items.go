// Package item contains grocery catalog use cases.
package item

import (
	"context"
	"fmt"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// ListItemsOutput represents the output of listing the catalog.
type ListItemsOutput struct {
	Items []*entity.GroceryItem
}

// ListItemsUseCase handles listing the grocery catalog.
type ListItemsUseCase struct {
	itemRepo adapter.GroceryItemRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(itemRepo adapter.GroceryItemRepository) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute retrieves the full catalog.
func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsOutput, error) {
	items, err := uc.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &ListItemsOutput{Items: items}, nil
}
