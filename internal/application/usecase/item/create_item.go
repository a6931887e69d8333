// Package item contains grocery catalog use cases.
package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// CreateItemInput represents the input for item creation.
type CreateItemInput struct {
	Name     string
	Brand    string
	Category string
	Unit     string
	Barcode  string
	Aliases  []string
}

// CreateItemOutput represents the output of item creation.
type CreateItemOutput struct {
	Item *entity.GroceryItem
}

// CreateItemUseCase handles adding a grocery item to the catalog.
type CreateItemUseCase struct {
	itemRepo adapter.GroceryItemRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(itemRepo adapter.GroceryItemRepository) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the item creation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeEmptyItemName,
			"item name cannot be empty",
			domainerror.ErrEmptyItemName,
		)
	}

	item := entity.NewGroceryItem(
		strings.TrimSpace(input.Name),
		input.Brand,
		input.Category,
		input.Unit,
		input.Barcode,
		input.Aliases,
	)

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &CreateItemOutput{Item: item}, nil
}
