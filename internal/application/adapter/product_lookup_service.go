// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductInfo represents product metadata resolved from a barcode.
type ProductInfo struct {
	Barcode         string
	Name            string
	Brand           string
	Category        string
	Unit            string
	ImageURL        string
	NutritionalInfo string
}

// PriceInfo represents an observed average price resolved from a barcode.
type PriceInfo struct {
	AveragePrice decimal.Decimal
	SampleCount  int
	Currency     string
}

// ProductLookupService defines the interface for the external barcode lookup
// provider. Both operations distinguish "not found" (nil result, nil error)
// from "lookup failed" (non-nil error).
type ProductLookupService interface {
	// FetchProduct resolves a barcode to product metadata.
	FetchProduct(ctx context.Context, barcode string) (*ProductInfo, error)

	// FetchPrice resolves a barcode to an observed average price.
	FetchPrice(ctx context.Context, barcode string) (*PriceInfo, error)
}
