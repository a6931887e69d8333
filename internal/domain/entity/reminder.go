// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder represents a scheduled replenishment reminder for a grocery item.
type Reminder struct {
	ItemID        uuid.UUID
	ItemName      string
	PredictedDate time.Time
}
