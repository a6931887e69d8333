// Package scan contains barcode lookup use cases.
package scan

import (
	"context"
	"log/slog"
	"strings"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// ScanBarcodeInput represents the input for a barcode scan.
type ScanBarcodeInput struct {
	Barcode string
}

// ScanBarcodeOutput represents the output of a barcode scan. Found is false
// when the barcode resolved to no product, which is a valid outcome distinct
// from a lookup failure.
type ScanBarcodeOutput struct {
	Found   bool
	Product *entity.ScannedProduct
}

// ScanBarcodeUseCase resolves a scanned barcode to product metadata and then
// to an observed price. Only a metadata lookup failure is a hard error: a
// failed or empty price lookup degrades to an unavailable price so the
// consumer can fall back to manual entry.
type ScanBarcodeUseCase struct {
	lookupService adapter.ProductLookupService
}

// NewScanBarcodeUseCase creates a new ScanBarcodeUseCase instance.
func NewScanBarcodeUseCase(lookupService adapter.ProductLookupService) *ScanBarcodeUseCase {
	return &ScanBarcodeUseCase{
		lookupService: lookupService,
	}
}

// Execute performs the two-step lookup.
func (uc *ScanBarcodeUseCase) Execute(ctx context.Context, input ScanBarcodeInput) (*ScanBarcodeOutput, error) {
	barcode := strings.TrimSpace(input.Barcode)
	if barcode == "" {
		return nil, domainerror.NewScanError(
			domainerror.ErrCodeEmptyBarcode,
			"barcode cannot be empty",
			domainerror.ErrEmptyBarcode,
		)
	}

	product, err := uc.lookupService.FetchProduct(ctx, barcode)
	if err != nil {
		return nil, domainerror.NewScanError(
			domainerror.ErrCodeProductLookupFailed,
			"product lookup failed",
			err,
		)
	}

	if product == nil {
		return &ScanBarcodeOutput{Found: false}, nil
	}

	scanned := &entity.ScannedProduct{
		Barcode:         product.Barcode,
		Name:            product.Name,
		Brand:           product.Brand,
		Category:        product.Category,
		Unit:            product.Unit,
		ImageURL:        product.ImageURL,
		NutritionalInfo: product.NutritionalInfo,
		PriceSource:     entity.PriceSourceUnavailable,
	}

	price, err := uc.lookupService.FetchPrice(ctx, barcode)
	switch {
	case err != nil:
		// Price lookup failure degrades the price only, never the scan.
		slog.Warn("Price lookup failed for scanned product",
			"barcode", barcode,
			"error", err,
		)
	case price != nil && price.AveragePrice.IsPositive():
		avg := price.AveragePrice
		scanned.AveragePrice = &avg
		scanned.PriceSource = entity.PriceSourceReal
		scanned.SampleCount = price.SampleCount
		scanned.Currency = price.Currency
	}

	return &ScanBarcodeOutput{
		Found:   true,
		Product: scanned,
	}, nil
}
