// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// GroceryItemModel represents the grocery_items table in the database.
type GroceryItemModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(255);not null;index"`
	Brand     string         `gorm:"type:varchar(255)"`
	Category  string         `gorm:"type:varchar(100);index"`
	Unit      string         `gorm:"type:varchar(50)"`
	Barcode   string         `gorm:"type:varchar(64);index"`
	Aliases   pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GroceryItemModel.
func (GroceryItemModel) TableName() string {
	return "grocery_items"
}

// ToEntity converts a GroceryItemModel to a domain GroceryItem entity.
func (m *GroceryItemModel) ToEntity() *entity.GroceryItem {
	return &entity.GroceryItem{
		ID:        m.ID,
		Name:      m.Name,
		Brand:     m.Brand,
		Category:  m.Category,
		Unit:      m.Unit,
		Barcode:   m.Barcode,
		Aliases:   []string(m.Aliases),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GroceryItemFromEntity creates a GroceryItemModel from a domain GroceryItem entity.
func GroceryItemFromEntity(item *entity.GroceryItem) *GroceryItemModel {
	return &GroceryItemModel{
		ID:        item.ID,
		Name:      item.Name,
		Brand:     item.Brand,
		Category:  item.Category,
		Unit:      item.Unit,
		Barcode:   item.Barcode,
		Aliases:   pq.StringArray(item.Aliases),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
