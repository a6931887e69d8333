// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntry represents a single observed price for a grocery item.
type PriceEntry struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	Price      decimal.Decimal
	StoreName  string
	RecordedAt time.Time
}

// NewPriceEntry creates a new PriceEntry entity.
func NewPriceEntry(itemID uuid.UUID, price decimal.Decimal, storeName string, recordedAt time.Time) *PriceEntry {
	return &PriceEntry{
		ID:         uuid.New(),
		ItemID:     itemID,
		Price:      price,
		StoreName:  storeName,
		RecordedAt: recordedAt,
	}
}
