// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// PriceEntryModel represents the price_entries table in the database.
type PriceEntryModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StoreName  string          `gorm:"type:varchar(255)"`
	RecordedAt time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the PriceEntryModel.
func (PriceEntryModel) TableName() string {
	return "price_entries"
}

// ToEntity converts a PriceEntryModel to a domain PriceEntry entity.
func (m *PriceEntryModel) ToEntity() *entity.PriceEntry {
	return &entity.PriceEntry{
		ID:         m.ID,
		ItemID:     m.ItemID,
		Price:      m.Price,
		StoreName:  m.StoreName,
		RecordedAt: m.RecordedAt,
	}
}

// PriceEntryFromEntity creates a PriceEntryModel from a domain PriceEntry entity.
func PriceEntryFromEntity(entry *entity.PriceEntry) *PriceEntryModel {
	return &PriceEntryModel{
		ID:         entry.ID,
		ItemID:     entry.ItemID,
		Price:      entry.Price,
		StoreName:  entry.StoreName,
		RecordedAt: entry.RecordedAt,
	}
}
