// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// intervalStrategyName identifies predictions produced by this strategy.
const intervalStrategyName = "interval"

// IntervalPredictionService predicts the next purchase from the average gap
// between consecutive purchases. It is the default local prediction strategy.
type IntervalPredictionService struct {
	now func() time.Time
}

// NewIntervalPredictionService creates a new interval prediction service instance.
func NewIntervalPredictionService() *IntervalPredictionService {
	return &IntervalPredictionService{
		now: time.Now,
	}
}

// PredictNextPurchase predicts the next purchase date as the last purchase
// plus the mean gap between consecutive purchases. Confidence decreases with
// gap variance: regular weekly buys score high, erratic ones low.
func (s *IntervalPredictionService) PredictNextPurchase(ctx context.Context, itemName, category string, history []*entity.Purchase) (*entity.PurchasePrediction, error) {
	if len(history) < 2 {
		return nil, fmt.Errorf("interval strategy needs at least 2 purchases, got %d", len(history))
	}

	gaps := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		gap := history[i].Date.Sub(history[i-1].Date).Hours() / 24
		if gap < 0 {
			return nil, fmt.Errorf("purchase history for %q is not in chronological order", itemName)
		}
		gaps = append(gaps, gap)
	}

	mean := 0.0
	for _, g := range gaps {
		mean += g
	}
	mean /= float64(len(gaps))

	if mean == 0 {
		return nil, fmt.Errorf("all purchases of %q happened on the same day", itemName)
	}

	variance := 0.0
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	variance /= float64(len(gaps))
	stddev := math.Sqrt(variance)

	last := history[len(history)-1].Date
	predicted := last.AddDate(0, 0, int(math.Round(mean)))

	return &entity.PurchasePrediction{
		PredictedDate:     predicted,
		DaysUntilPurchase: wholeDaysUntil(s.now(), predicted),
		Confidence:        1 / (1 + stddev/mean),
		Strategy:          intervalStrategyName,
	}, nil
}

// wholeDaysUntil returns the number of whole days from now to the given date,
// negative when the date is already past. Both instants are truncated to UTC
// day boundaries before subtracting.
func wholeDaysUntil(now, date time.Time) int {
	now = now.UTC()
	date = date.UTC()
	dayNow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(dayDate.Sub(dayNow).Hours() / 24)
}
