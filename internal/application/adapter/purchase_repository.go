// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// PurchaseRepository defines the interface for purchase persistence operations.
// Purchases are immutable once recorded, so no update or delete is exposed.
type PurchaseRepository interface {
	// Create records a new purchase in the database.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByItem retrieves all purchases of an item ordered by purchase date ascending.
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Purchase, error)

	// FindByDateRange retrieves all purchases, with their items, whose date
	// falls within [start, end] inclusive.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.PurchaseWithItem, error)
}
