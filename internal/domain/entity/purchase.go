// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase represents a recorded purchase of a grocery item. Purchases are
// immutable once recorded.
type Purchase struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Quantity  float64
	TotalCost decimal.Decimal
	Date      time.Time
	StoreName string
	CreatedAt time.Time
}

// NewPurchase creates a new Purchase entity.
func NewPurchase(itemID uuid.UUID, quantity float64, totalCost decimal.Decimal, date time.Time, storeName string) *Purchase {
	return &Purchase{
		ID:        uuid.New(),
		ItemID:    itemID,
		Quantity:  quantity,
		TotalCost: totalCost,
		Date:      date,
		StoreName: storeName,
		CreatedAt: time.Now().UTC(),
	}
}

// PurchaseWithItem represents a purchase with its associated catalog item.
type PurchaseWithItem struct {
	Purchase *Purchase
	Item     *GroceryItem
}
