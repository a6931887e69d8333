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

// householdRepository implements the adapter.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository instance.
func NewHouseholdRepository(db *gorm.DB) adapter.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// Create creates a new household in the database.
func (r *householdRepository) Create(ctx context.Context, household *entity.Household) error {
	householdModel := model.HouseholdFromEntity(household)
	result := r.db.WithContext(ctx).Create(householdModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a household by its ID.
func (r *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	var householdModel model.HouseholdModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&householdModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHouseholdNotFound
		}
		return nil, result.Error
	}
	return householdModel.ToEntity(), nil
}

// FindByName retrieves a household by its name.
func (r *householdRepository) FindByName(ctx context.Context, name string) (*entity.Household, error) {
	var householdModel model.HouseholdModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&householdModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHouseholdNotFound
		}
		return nil, result.Error
	}
	return householdModel.ToEntity(), nil
}

// ExistsByName checks if a household with the given name exists.
func (r *householdRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HouseholdModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
