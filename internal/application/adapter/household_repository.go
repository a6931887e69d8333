// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// HouseholdRepository defines the interface for household persistence operations.
type HouseholdRepository interface {
	// Create creates a new household in the database.
	Create(ctx context.Context, household *entity.Household) error

	// FindByID retrieves a household by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// FindByName retrieves a household by its name.
	FindByName(ctx context.Context, name string) (*entity.Household, error)

	// ExistsByName checks if a household with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
