// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// GroceryItemRepository defines the interface for catalog persistence operations.
type GroceryItemRepository interface {
	// Create creates a new grocery item in the catalog.
	Create(ctx context.Context, item *entity.GroceryItem) error

	// FindByID retrieves a grocery item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error)

	// FindAll retrieves the full catalog in the repository's natural order.
	FindAll(ctx context.Context) ([]*entity.GroceryItem, error)

	// Search retrieves candidate items whose name, brand or alias matches the
	// query. Relevance ranking is the caller's concern, not the repository's.
	Search(ctx context.Context, query string) ([]*entity.GroceryItem, error)
}
