// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// HouseholdModel represents the households table in the database.
type HouseholdModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PassphraseHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the HouseholdModel.
func (HouseholdModel) TableName() string {
	return "households"
}

// ToEntity converts a HouseholdModel to a domain Household entity.
func (m *HouseholdModel) ToEntity() *entity.Household {
	return &entity.Household{
		ID:             m.ID,
		Name:           m.Name,
		PassphraseHash: m.PassphraseHash,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// HouseholdFromEntity creates a HouseholdModel from a domain Household entity.
func HouseholdFromEntity(household *entity.Household) *HouseholdModel {
	return &HouseholdModel{
		ID:             household.ID,
		Name:           household.Name,
		PassphraseHash: household.PassphraseHash,
		CreatedAt:      household.CreatedAt,
		UpdatedAt:      household.UpdatedAt,
	}
}
