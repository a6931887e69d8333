// Package scan contains barcode lookup use cases.
package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// fakeLookupService returns canned product and price lookup results.
type fakeLookupService struct {
	product    *adapter.ProductInfo
	productErr error
	price      *adapter.PriceInfo
	priceErr   error
}

func (f *fakeLookupService) FetchProduct(ctx context.Context, barcode string) (*adapter.ProductInfo, error) {
	return f.product, f.productErr
}

func (f *fakeLookupService) FetchPrice(ctx context.Context, barcode string) (*adapter.PriceInfo, error) {
	return f.price, f.priceErr
}

func TestScanBarcodeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	oatMilk := &adapter.ProductInfo{
		Barcode:  "7394376616501",
		Name:     "Oat Drink",
		Brand:    "Oatly",
		Category: "Plant-based drinks",
		Unit:     "1 L",
	}

	t.Run("resolves product with a real price", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{
			product: oatMilk,
			price: &adapter.PriceInfo{
				AveragePrice: decimal.NewFromFloat(2.49),
				SampleCount:  12,
				Currency:     "EUR",
			},
		})

		output, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "7394376616501"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Found {
			t.Fatal("expected product to be found")
		}
		p := output.Product
		if p.Name != "Oat Drink" {
			t.Errorf("expected name Oat Drink, got %s", p.Name)
		}
		if p.PriceSource != entity.PriceSourceReal {
			t.Errorf("expected real price source, got %s", p.PriceSource)
		}
		if p.AveragePrice == nil || !p.AveragePrice.Equal(decimal.NewFromFloat(2.49)) {
			t.Errorf("expected average price 2.49, got %v", p.AveragePrice)
		}
		if p.SampleCount != 12 {
			t.Errorf("expected sample count 12, got %d", p.SampleCount)
		}
		if p.Currency != "EUR" {
			t.Errorf("expected currency EUR, got %s", p.Currency)
		}
	})

	t.Run("price lookup failure degrades to unavailable price", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{
			product:  oatMilk,
			priceErr: errors.New("provider timeout"),
		})

		output, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "7394376616501"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Found {
			t.Fatal("expected product to be found")
		}
		if output.Product.PriceSource != entity.PriceSourceUnavailable {
			t.Errorf("expected unavailable price source, got %s", output.Product.PriceSource)
		}
		if output.Product.AveragePrice != nil {
			t.Errorf("expected nil average price, got %v", output.Product.AveragePrice)
		}
	})

	t.Run("missing price degrades to unavailable price", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{product: oatMilk})

		output, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "7394376616501"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Product.PriceSource != entity.PriceSourceUnavailable {
			t.Errorf("expected unavailable price source, got %s", output.Product.PriceSource)
		}
	})

	t.Run("non-positive price degrades to unavailable price", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{
			product: oatMilk,
			price:   &adapter.PriceInfo{AveragePrice: decimal.Zero},
		})

		output, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "7394376616501"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Product.PriceSource != entity.PriceSourceUnavailable {
			t.Errorf("expected unavailable price source, got %s", output.Product.PriceSource)
		}
	})

	t.Run("unknown barcode reports not found without error", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{})

		output, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "0000000000000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Found {
			t.Error("expected product not to be found")
		}
		if output.Product != nil {
			t.Error("expected nil product for unknown barcode")
		}
	})

	t.Run("product lookup failure is a hard error", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{
			productErr: errors.New("provider down"),
		})

		_, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "7394376616501"})

		var scanErr *domainerror.ScanError
		if !errors.As(err, &scanErr) {
			t.Fatalf("expected ScanError, got %v", err)
		}
		if scanErr.Code != domainerror.ErrCodeProductLookupFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProductLookupFailed, scanErr.Code)
		}
	})

	t.Run("empty barcode is rejected", func(t *testing.T) {
		uc := NewScanBarcodeUseCase(&fakeLookupService{})

		_, err := uc.Execute(ctx, ScanBarcodeInput{Barcode: "   "})

		var scanErr *domainerror.ScanError
		if !errors.As(err, &scanErr) {
			t.Fatalf("expected ScanError, got %v", err)
		}
		if scanErr.Code != domainerror.ErrCodeEmptyBarcode {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyBarcode, scanErr.Code)
		}
	})
}
