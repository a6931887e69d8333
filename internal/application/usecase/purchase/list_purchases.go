// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// ListPurchasesInput represents the input for listing purchases in a date range.
type ListPurchasesInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// ListPurchasesOutput represents the output of listing purchases.
type ListPurchasesOutput struct {
	Purchases []*entity.PurchaseWithItem
}

// ListPurchasesUseCase handles listing purchases within a date range.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute retrieves purchases with their items for the given range.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context, input ListPurchasesInput) (*ListPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &ListPurchasesOutput{Purchases: purchases}, nil
}
