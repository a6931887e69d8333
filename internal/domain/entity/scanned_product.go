// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// PriceSource tags how a scanned product's price was resolved.
type PriceSource string

const (
	// PriceSourceReal indicates a real observed price from the lookup service.
	PriceSourceReal PriceSource = "real"
	// PriceSourceUnavailable indicates no usable price could be resolved and
	// the consumer must allow manual price entry.
	PriceSourceUnavailable PriceSource = "unavailable"
)

// ScannedProduct represents the result of resolving a scanned barcode to
// product metadata and, when possible, an observed average price.
type ScannedProduct struct {
	Barcode         string
	Name            string
	Brand           string
	Category        string
	Unit            string
	ImageURL        string
	NutritionalInfo string
	AveragePrice    *decimal.Decimal // Nil when PriceSource is unavailable
	PriceSource     PriceSource
	SampleCount     int    // Number of price observations, only for real prices
	Currency        string // Currency code from the lookup response, only for real prices
}
