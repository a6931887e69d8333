// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	"github.com/grocery-tracker/backend/internal/integration/persistence/model"
)

// priceHistoryRepository implements the adapter.PriceHistoryRepository interface.
type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository creates a new price history repository instance.
func NewPriceHistoryRepository(db *gorm.DB) adapter.PriceHistoryRepository {
	return &priceHistoryRepository{
		db: db,
	}
}

// Create records a new observed price for an item.
func (r *priceHistoryRepository) Create(ctx context.Context, entry *entity.PriceEntry) error {
	entryModel := model.PriceEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByItem retrieves all price entries for an item, most recent first.
func (r *priceHistoryRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.PriceEntry, error) {
	var entryModels []model.PriceEntryModel
	result := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("recorded_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.PriceEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}
