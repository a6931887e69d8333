// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// PurchasePrediction represents a forecasted next purchase for an item,
// produced by a prediction strategy from the item's purchase history.
type PurchasePrediction struct {
	PredictedDate     time.Time
	DaysUntilPurchase int // Negative when the predicted date is already past
	Confidence        float64
	Strategy          string // Name of the strategy that produced the prediction
}

// ItemPurchasePrediction pairs a catalog item with its purchase prediction.
// Identity is the underlying item's ID.
type ItemPurchasePrediction struct {
	Item       *GroceryItem
	Prediction *PurchasePrediction
}
