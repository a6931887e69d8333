// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
	"github.com/grocery-tracker/backend/internal/integration/persistence/model"
)

// groceryItemRepository implements the adapter.GroceryItemRepository interface.
type groceryItemRepository struct {
	db *gorm.DB
}

// NewGroceryItemRepository creates a new grocery item repository instance.
func NewGroceryItemRepository(db *gorm.DB) adapter.GroceryItemRepository {
	return &groceryItemRepository{
		db: db,
	}
}

// Create creates a new grocery item in the catalog.
func (r *groceryItemRepository) Create(ctx context.Context, item *entity.GroceryItem) error {
	itemModel := model.GroceryItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a grocery item by its ID.
func (r *groceryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error) {
	var itemModel model.GroceryItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves the full catalog ordered by name.
func (r *groceryItemRepository) FindAll(ctx context.Context) ([]*entity.GroceryItem, error) {
	var itemModels []model.GroceryItemModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.GroceryItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Search retrieves candidate items whose name or brand contains the query,
// case-insensitively, in catalog order. Relevance ranking happens in the
// application layer.
func (r *groceryItemRepository) Search(ctx context.Context, query string) ([]*entity.GroceryItem, error) {
	var itemModels []model.GroceryItemModel
	pattern := "%" + query + "%"
	result := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?)", pattern, pattern).
		Order("name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.GroceryItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}
