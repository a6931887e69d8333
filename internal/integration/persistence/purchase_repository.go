// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	"github.com/grocery-tracker/backend/internal/integration/persistence/model"
)

// purchaseRepository implements the adapter.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance.
func NewPurchaseRepository(db *gorm.DB) adapter.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create records a new purchase in the database.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.PurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Create(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByItem retrieves all purchases of an item ordered by purchase date ascending.
func (r *purchaseRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel
	result := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("date ASC").
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, len(purchaseModels))
	for i, pm := range purchaseModels {
		purchases[i] = pm.ToEntity()
	}
	return purchases, nil
}

// FindByDateRange retrieves all purchases, with their items, whose date falls
// within [start, end] inclusive.
func (r *purchaseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.PurchaseWithItem, error) {
	var purchaseModels []model.PurchaseModel
	result := r.db.WithContext(ctx).
		Preload("Item").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.PurchaseWithItem, len(purchaseModels))
	for i, pm := range purchaseModels {
		var item *entity.GroceryItem
		if pm.Item != nil {
			item = pm.Item.ToEntity()
		}
		purchases[i] = &entity.PurchaseWithItem{
			Purchase: pm.ToEntity(),
			Item:     item,
		}
	}
	return purchases, nil
}
