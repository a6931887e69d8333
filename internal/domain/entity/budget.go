// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a time-boxed grocery spending budget.
type Budget struct {
	ID        uuid.UUID
	Name      string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new active Budget entity.
func NewBudget(name string, amount decimal.Decimal, startDate, endDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Overlaps reports whether the budget's date range shares at least one day
// with the given range, using inclusive bounds.
func (b *Budget) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// Deactivate marks the budget inactive.
func (b *Budget) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now().UTC()
}

// BudgetSummary represents the computed spending summary for a budget.
// It is derived on every request and never persisted.
type BudgetSummary struct {
	Budget             *Budget
	TotalSpent         decimal.Decimal
	RemainingAmount    decimal.Decimal
	PercentageUsed     float64
	SpendingByCategory map[string]decimal.Decimal
	DailyAverage       decimal.Decimal
	ProjectedTotal     decimal.Decimal
	IsOnTrack          bool
	DaysRemaining      int
}
