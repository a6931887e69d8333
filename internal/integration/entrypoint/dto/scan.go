// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// ScanResponse represents the result of resolving a scanned barcode. Found is
// false when the barcode matched no product.
type ScanResponse struct {
	Found   bool                 `json:"found"`
	Product *ScanProductResponse `json:"product,omitempty"`
}

// ScanProductResponse represents the resolved product metadata and price.
type ScanProductResponse struct {
	Barcode         string           `json:"barcode"`
	Name            string           `json:"name"`
	Brand           string           `json:"brand,omitempty"`
	Category        string           `json:"category,omitempty"`
	Unit            string           `json:"unit,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	NutritionalInfo string           `json:"nutritional_info,omitempty"`
	AveragePrice    *decimal.Decimal `json:"average_price,omitempty"`
	PriceSource     string           `json:"price_source"`
	SampleCount     int              `json:"sample_count,omitempty"`
	Currency        string           `json:"currency,omitempty"`
}

// ToScanResponse converts a scan outcome to a ScanResponse DTO.
func ToScanResponse(found bool, product *entity.ScannedProduct) ScanResponse {
	if !found {
		return ScanResponse{Found: false}
	}
	return ScanResponse{
		Found: true,
		Product: &ScanProductResponse{
			Barcode:         product.Barcode,
			Name:            product.Name,
			Brand:           product.Brand,
			Category:        product.Category,
			Unit:            product.Unit,
			ImageURL:        product.ImageURL,
			NutritionalInfo: product.NutritionalInfo,
			AveragePrice:    product.AveragePrice,
			PriceSource:     string(product.PriceSource),
			SampleCount:     product.SampleCount,
			Currency:        product.Currency,
		},
	}
}
