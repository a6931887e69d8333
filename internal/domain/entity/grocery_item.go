// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GroceryItem represents a catalog item the household buys.
type GroceryItem struct {
	ID        uuid.UUID
	Name      string
	Brand     string // Optional, empty when unbranded
	Category  string // Free-text label, e.g. "Dairy"
	Unit      string // e.g. "L", "kg", "unit"
	Barcode   string // Optional, empty when never scanned
	Aliases   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGroceryItem creates a new GroceryItem entity.
func NewGroceryItem(name, brand, category, unit, barcode string, aliases []string) *GroceryItem {
	now := time.Now().UTC()

	return &GroceryItem{
		ID:        uuid.New(),
		Name:      name,
		Brand:     brand,
		Category:  category,
		Unit:      unit,
		Barcode:   barcode,
		Aliases:   aliases,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
