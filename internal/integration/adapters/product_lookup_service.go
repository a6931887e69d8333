// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/application/adapter"
)

const defaultLookupTimeout = 10 * time.Second

// OpenFoodFactsService implements the adapter.ProductLookupService interface
// against an Open Food Facts style API: one endpoint for product metadata by
// barcode, one for crowd-sourced price observations.
type OpenFoodFactsService struct {
	productBaseURL string
	pricesBaseURL  string
	client         *http.Client
}

// NewOpenFoodFactsService creates a new product lookup service instance.
func NewOpenFoodFactsService(productBaseURL, pricesBaseURL string) *OpenFoodFactsService {
	return &OpenFoodFactsService{
		productBaseURL: productBaseURL,
		pricesBaseURL:  pricesBaseURL,
		client: &http.Client{
			Timeout: defaultLookupTimeout,
		},
	}
}

// productResponse represents the product metadata payload.
type productResponse struct {
	Status  int `json:"status"` // 1 when found, 0 when unknown barcode
	Product struct {
		ProductName  string `json:"product_name"`
		Brands       string `json:"brands"`
		Categories   string `json:"categories"`
		Quantity     string `json:"quantity"`
		ImageURL     string `json:"image_url"`
		NutriScore   string `json:"nutriscore_grade"`
	} `json:"product"`
}

// pricesResponse represents the price observations payload.
type pricesResponse struct {
	Total int `json:"total"`
	Items []struct {
		Price    float64 `json:"price"`
		Currency string  `json:"currency"`
	} `json:"items"`
}

// FetchProduct resolves a barcode to product metadata. An unknown barcode is
// reported as (nil, nil), distinct from a failed lookup.
func (s *OpenFoodFactsService) FetchProduct(ctx context.Context, barcode string) (*adapter.ProductInfo, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", s.productBaseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup returned status %d", resp.StatusCode)
	}

	var payload productResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	if payload.Status != 1 {
		return nil, nil
	}

	return &adapter.ProductInfo{
		Barcode:         barcode,
		Name:            payload.Product.ProductName,
		Brand:           payload.Product.Brands,
		Category:        payload.Product.Categories,
		Unit:            payload.Product.Quantity,
		ImageURL:        payload.Product.ImageURL,
		NutritionalInfo: payload.Product.NutriScore,
	}, nil
}

// FetchPrice resolves a barcode to the average of the observed prices. No
// observations is reported as (nil, nil), distinct from a failed lookup.
func (s *OpenFoodFactsService) FetchPrice(ctx context.Context, barcode string) (*adapter.PriceInfo, error) {
	endpoint := fmt.Sprintf("%s/api/v1/prices?product_code=%s", s.pricesBaseURL, url.QueryEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price lookup returned status %d", resp.StatusCode)
	}

	var payload pricesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode price response: %w", err)
	}

	if len(payload.Items) == 0 {
		return nil, nil
	}

	sum := decimal.Zero
	for _, item := range payload.Items {
		sum = sum.Add(decimal.NewFromFloat(item.Price))
	}
	average := sum.Div(decimal.NewFromInt(int64(len(payload.Items)))).Round(2)

	return &adapter.PriceInfo{
		AveragePrice: average,
		SampleCount:  len(payload.Items),
		Currency:     payload.Items[0].Currency,
	}, nil
}
