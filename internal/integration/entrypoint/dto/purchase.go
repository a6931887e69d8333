// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// RecordPurchaseRequest represents the request body for recording a purchase.
type RecordPurchaseRequest struct {
	ItemID    string          `json:"item_id" binding:"required,uuid"`
	Quantity  float64         `json:"quantity" binding:"required"`
	TotalCost decimal.Decimal `json:"total_cost" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
	StoreName string          `json:"store_name"`
}

// PurchaseResponse represents a single purchase in API responses.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Quantity  float64         `json:"quantity"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Date      time.Time       `json:"date"`
	StoreName string          `json:"store_name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PurchaseWithItemResponse represents a purchase joined with its catalog item.
type PurchaseWithItemResponse struct {
	Purchase PurchaseResponse `json:"purchase"`
	Item     ItemResponse     `json:"item"`
}

// PurchaseListResponse represents the response for listing purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseWithItemResponse `json:"purchases"`
}

// ToPurchaseResponse converts a domain Purchase entity to a PurchaseResponse DTO.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:        p.ID.String(),
		ItemID:    p.ItemID.String(),
		Quantity:  p.Quantity,
		TotalCost: p.TotalCost,
		Date:      p.Date,
		StoreName: p.StoreName,
		CreatedAt: p.CreatedAt,
	}
}

// ToPurchaseListResponse converts purchases with items to a PurchaseListResponse DTO.
func ToPurchaseListResponse(purchases []*entity.PurchaseWithItem) PurchaseListResponse {
	responses := make([]PurchaseWithItemResponse, len(purchases))
	for i, p := range purchases {
		responses[i] = PurchaseWithItemResponse{
			Purchase: ToPurchaseResponse(p.Purchase),
			Item:     ToItemResponse(p.Item),
		}
	}
	return PurchaseListResponse{Purchases: responses}
}
