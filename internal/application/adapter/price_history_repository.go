// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// PriceHistoryRepository defines the interface for price history persistence operations.
type PriceHistoryRepository interface {
	// Create records a new observed price for an item.
	Create(ctx context.Context, entry *entity.PriceEntry) error

	// FindByItem retrieves all price entries for an item ordered by recorded
	// time descending (most recent first).
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.PriceEntry, error)
}
