// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// CreateItemRequest represents the request body for adding a catalog item.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Unit     string   `json:"unit"`
	Barcode  string   `json:"barcode"`
	Aliases  []string `json:"aliases"`
}

// ItemResponse represents a single catalog item in API responses.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Category  string    `json:"category,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	Barcode   string    `json:"barcode,omitempty"`
	Aliases   []string  `json:"aliases,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemListResponse represents the response for listing or searching items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// PriceEntryResponse represents a single observed price in API responses.
type PriceEntryResponse struct {
	ID         string          `json:"id"`
	Price      decimal.Decimal `json:"price"`
	StoreName  string          `json:"store_name,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// PriceHistoryResponse represents an item's price history, most recent first.
type PriceHistoryResponse struct {
	Item    ItemResponse         `json:"item"`
	Entries []PriceEntryResponse `json:"entries"`
}

// ToItemResponse converts a domain GroceryItem entity to an ItemResponse DTO.
func ToItemResponse(item *entity.GroceryItem) ItemResponse {
	return ItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Brand:     item.Brand,
		Category:  item.Category,
		Unit:      item.Unit,
		Barcode:   item.Barcode,
		Aliases:   item.Aliases,
		CreatedAt: item.CreatedAt,
	}
}

// ToItemListResponse converts item entities to an ItemListResponse DTO.
func ToItemListResponse(items []*entity.GroceryItem) ItemListResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return ItemListResponse{Items: responses}
}

// ToPriceHistoryResponse converts an item and its price entries to a
// PriceHistoryResponse DTO.
func ToPriceHistoryResponse(item *entity.GroceryItem, entries []*entity.PriceEntry) PriceHistoryResponse {
	responses := make([]PriceEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = PriceEntryResponse{
			ID:         e.ID.String(),
			Price:      e.Price,
			StoreName:  e.StoreName,
			RecordedAt: e.RecordedAt,
		}
	}
	return PriceHistoryResponse{
		Item:    ToItemResponse(item),
		Entries: responses,
	}
}
