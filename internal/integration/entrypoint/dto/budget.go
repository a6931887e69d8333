// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name      string          `json:"name" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	StartDate time.Time       `json:"start_date" binding:"required"`
	EndDate   time.Time       `json:"end_date" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateBudgetResponse represents the response for budget creation, listing
// any previously active budgets that were deactivated by overlap.
type CreateBudgetResponse struct {
	Budget      BudgetResponse   `json:"budget"`
	Deactivated []BudgetResponse `json:"deactivated,omitempty"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetSummaryResponse represents the computed summary for a budget.
type BudgetSummaryResponse struct {
	Budget             BudgetResponse             `json:"budget"`
	TotalSpent         decimal.Decimal            `json:"total_spent"`
	RemainingAmount    decimal.Decimal            `json:"remaining_amount"`
	PercentageUsed     float64                    `json:"percentage_used"`
	SpendingByCategory map[string]decimal.Decimal `json:"spending_by_category"`
	DailyAverage       decimal.Decimal            `json:"daily_average"`
	ProjectedTotal     decimal.Decimal            `json:"projected_total"`
	IsOnTrack          bool                       `json:"is_on_track"`
	DaysRemaining      int                        `json:"days_remaining"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Amount:    b.Amount,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

// ToCreateBudgetResponse converts a created budget and the budgets it
// deactivated to a CreateBudgetResponse DTO.
func ToCreateBudgetResponse(budget *entity.Budget, deactivated []*entity.Budget) CreateBudgetResponse {
	resp := CreateBudgetResponse{Budget: ToBudgetResponse(budget)}
	for _, b := range deactivated {
		resp.Deactivated = append(resp.Deactivated, ToBudgetResponse(b))
	}
	return resp
}

// ToBudgetListResponse converts budget entities to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: responses}
}

// ToBudgetSummaryResponse converts a domain BudgetSummary to a response DTO.
func ToBudgetSummaryResponse(s *entity.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Budget:             ToBudgetResponse(s.Budget),
		TotalSpent:         s.TotalSpent,
		RemainingAmount:    s.RemainingAmount,
		PercentageUsed:     s.PercentageUsed,
		SpendingByCategory: s.SpendingByCategory,
		DailyAverage:       s.DailyAverage,
		ProjectedTotal:     s.ProjectedTotal,
		IsOnTrack:          s.IsOnTrack,
		DaysRemaining:      s.DaysRemaining,
	}
}
