// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// PurchasePredictionService defines the pluggable strategy that turns an
// item's purchase history into a forecasted next purchase. Implementations
// must behave as pure functions of their inputs: no hidden state is assumed
// by the orchestration layer.
type PurchasePredictionService interface {
	// PredictNextPurchase predicts when the item will next be purchased.
	// The history is expected in chronological order and to contain at
	// least two purchases.
	PredictNextPurchase(ctx context.Context, itemName, category string, history []*entity.Purchase) (*entity.PurchasePrediction, error)
}
