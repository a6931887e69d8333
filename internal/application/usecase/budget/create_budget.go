// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Name      string
	Amount    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget      *entity.Budget
	Deactivated []*entity.Budget
}

// CreateBudgetUseCase handles budget creation, deactivating any active budget
// whose period overlaps the candidate before the candidate is persisted.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	// Validate before any repository call
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !input.StartDate.Before(input.EndDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"budget start date must be before end date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetName,
			"budget name cannot be empty",
			domainerror.ErrEmptyBudgetName,
		)
	}

	// Find currently active budgets that overlap the candidate period
	activeBudgets, err := uc.budgetRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active budgets: %w", err)
	}

	overlapping := make([]*entity.Budget, 0)
	for _, existing := range activeBudgets {
		if existing.Overlaps(input.StartDate, input.EndDate) {
			overlapping = append(overlapping, existing)
		}
	}

	// Deactivate overlapping budgets as a batch. The create step waits for
	// every update to finish, and any single failure aborts the operation
	// before the candidate is persisted. Deactivations already committed are
	// not rolled back.
	if err := uc.deactivateAll(ctx, overlapping); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetDeactivationFailed,
			"failed to deactivate overlapping budget",
			err,
		)
	}

	budget := entity.NewBudget(input.Name, input.Amount, input.StartDate, input.EndDate)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	slog.Info("Budget created",
		"budget_id", budget.ID,
		"name", budget.Name,
		"deactivated", len(overlapping),
	)

	return &CreateBudgetOutput{
		Budget:      budget,
		Deactivated: overlapping,
	}, nil
}

// deactivateAll marks every given budget inactive and persists the updates
// concurrently, joining before returning the first error encountered.
func (uc *CreateBudgetUseCase) deactivateAll(ctx context.Context, budgets []*entity.Budget) error {
	if len(budgets) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(budgets))

	for i, b := range budgets {
		wg.Add(1)
		go func(i int, b *entity.Budget) {
			defer wg.Done()
			b.Deactivate()
			errs[i] = uc.budgetRepo.Update(ctx, b)
		}(i, b)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
