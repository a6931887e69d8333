// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// GetBudgetSummaryInput represents the input for computing a budget summary.
type GetBudgetSummaryInput struct {
	BudgetID uuid.UUID
	Now      time.Time
}

// GetBudgetSummaryOutput represents the output of computing a budget summary.
type GetBudgetSummaryOutput struct {
	Summary *entity.BudgetSummary
}

// GetBudgetSummaryUseCase aggregates the purchases within a budget's period
// into spend totals, a per-category breakdown and an end-of-period projection.
// The summary is recomputed from repository state on every call; for a fixed
// budget, purchase set and reference time the result is deterministic.
type GetBudgetSummaryUseCase struct {
	budgetRepo   adapter.BudgetRepository
	purchaseRepo adapter.PurchaseRepository
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(budgetRepo adapter.BudgetRepository, purchaseRepo adapter.PurchaseRepository) *GetBudgetSummaryUseCase {
	return &GetBudgetSummaryUseCase{
		budgetRepo:   budgetRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Execute computes the budget summary.
func (uc *GetBudgetSummaryUseCase) Execute(ctx context.Context, input GetBudgetSummaryInput) (*GetBudgetSummaryOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	purchases, err := uc.purchaseRepo.FindByDateRange(ctx, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}

	totalSpent := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, p := range purchases {
		totalSpent = totalSpent.Add(p.Purchase.TotalCost)

		category := uncategorizedLabel
		if p.Item != nil && p.Item.Category != "" {
			category = p.Item.Category
		}
		byCategory[category] = byCategory[category].Add(p.Purchase.TotalCost)
	}

	remaining := budget.Amount.Sub(totalSpent)

	var percentageUsed float64
	if !totalSpent.IsZero() {
		pct := totalSpent.Div(budget.Amount).Mul(decimal.NewFromInt(100))
		percentageUsed, _ = pct.Round(2).Float64()
	}

	daysPassed := daysBetween(budget.StartDate, input.Now)
	if daysPassed < 1 {
		daysPassed = 1
	}
	totalDays := daysBetween(budget.StartDate, budget.EndDate)

	dailyAverage := totalSpent.Div(decimal.NewFromInt(int64(daysPassed)))
	projectedTotal := dailyAverage.Mul(decimal.NewFromInt(int64(totalDays)))

	summary := &entity.BudgetSummary{
		Budget:             budget,
		TotalSpent:         totalSpent,
		RemainingAmount:    remaining,
		PercentageUsed:     percentageUsed,
		SpendingByCategory: byCategory,
		DailyAverage:       dailyAverage,
		ProjectedTotal:     projectedTotal,
		IsOnTrack:          projectedTotal.LessThanOrEqual(budget.Amount),
		DaysRemaining:      totalDays - daysPassed,
	}

	return &GetBudgetSummaryOutput{Summary: summary}, nil
}

// uncategorizedLabel groups purchases whose item carries no category label.
const uncategorizedLabel = "Uncategorized"

// daysBetween returns the number of whole days from a to b. Both instants are
// truncated to UTC day boundaries before subtracting, so the result depends
// only on the calendar dates involved.
func daysBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	dayA := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	dayB := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(dayB.Sub(dayA).Hours() / 24)
}
