// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// PredictionResponse represents a forecasted next purchase for an item.
type PredictionResponse struct {
	Item              ItemResponse `json:"item"`
	PredictedDate     time.Time    `json:"predicted_date"`
	DaysUntilPurchase int          `json:"days_until_purchase"`
	Confidence        float64      `json:"confidence"`
	Strategy          string       `json:"strategy"`
}

// ForecastResponse represents the upcoming replenishment forecast, ordered
// soonest first.
type ForecastResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

// ToForecastResponse converts item predictions to a ForecastResponse DTO.
func ToForecastResponse(predictions []*entity.ItemPurchasePrediction) ForecastResponse {
	responses := make([]PredictionResponse, len(predictions))
	for i, p := range predictions {
		responses[i] = PredictionResponse{
			Item:              ToItemResponse(p.Item),
			PredictedDate:     p.Prediction.PredictedDate,
			DaysUntilPurchase: p.Prediction.DaysUntilPurchase,
			Confidence:        p.Prediction.Confidence,
			Strategy:          p.Prediction.Strategy,
		}
	}
	return ForecastResponse{Predictions: responses}
}
