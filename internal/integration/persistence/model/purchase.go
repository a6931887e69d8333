// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// PurchaseModel represents the purchases table in the database.
type PurchaseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  float64         `gorm:"not null"`
	TotalCost decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	StoreName string          `gorm:"type:varchar(255)"`
	CreatedAt time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Item *GroceryItemModel `gorm:"foreignKey:ItemID;references:ID"`
}

// TableName returns the table name for the PurchaseModel.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToEntity converts a PurchaseModel to a domain Purchase entity.
func (m *PurchaseModel) ToEntity() *entity.Purchase {
	return &entity.Purchase{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Quantity:  m.Quantity,
		TotalCost: m.TotalCost,
		Date:      m.Date,
		StoreName: m.StoreName,
		CreatedAt: m.CreatedAt,
	}
}

// PurchaseFromEntity creates a PurchaseModel from a domain Purchase entity.
func PurchaseFromEntity(purchase *entity.Purchase) *PurchaseModel {
	return &PurchaseModel{
		ID:        purchase.ID,
		ItemID:    purchase.ItemID,
		Quantity:  purchase.Quantity,
		TotalCost: purchase.TotalCost,
		Date:      purchase.Date,
		StoreName: purchase.StoreName,
		CreatedAt: purchase.CreatedAt,
	}
}
