// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Household represents the authenticated principal that owns the catalog,
// budgets and purchase history.
type Household struct {
	ID             uuid.UUID
	Name           string
	PassphraseHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewHousehold creates a new Household entity.
func NewHousehold(name, passphraseHash string) *Household {
	now := time.Now().UTC()

	return &Household{
		ID:             uuid.New(),
		Name:           name,
		PassphraseHash: passphraseHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
