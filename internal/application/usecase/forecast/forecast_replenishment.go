// Package forecast contains replenishment forecasting use cases.
package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
)

const (
	// ForecastWindowDays bounds the forecast to items predicted to be
	// needed within the next week.
	ForecastWindowDays = 7

	// ReminderThresholdDays is the days-until threshold at or below which a
	// reminder is scheduled for a surviving prediction.
	ReminderThresholdDays = 2

	// MinPurchasesForPrediction is the minimum purchase history length a
	// trend can be derived from.
	MinPurchasesForPrediction = 2
)

// ForecastReplenishmentInput represents the input for the replenishment forecast.
type ForecastReplenishmentInput struct {
	Now time.Time
}

// ForecastReplenishmentOutput represents the output of the replenishment forecast.
type ForecastReplenishmentOutput struct {
	Predictions []*entity.ItemPurchasePrediction
}

// ForecastReplenishmentUseCase fans out over the item catalog, predicts the
// next purchase per item, and returns the predictions due within the forecast
// window ordered soonest first. Reminders are scheduled for predictions due
// within the reminder threshold as a side effect.
type ForecastReplenishmentUseCase struct {
	itemRepo          adapter.GroceryItemRepository
	purchaseRepo      adapter.PurchaseRepository
	predictionService adapter.PurchasePredictionService
	scheduler         adapter.NotificationScheduler
}

// NewForecastReplenishmentUseCase creates a new ForecastReplenishmentUseCase instance.
func NewForecastReplenishmentUseCase(
	itemRepo adapter.GroceryItemRepository,
	purchaseRepo adapter.PurchaseRepository,
	predictionService adapter.PurchasePredictionService,
	scheduler adapter.NotificationScheduler,
) *ForecastReplenishmentUseCase {
	return &ForecastReplenishmentUseCase{
		itemRepo:          itemRepo,
		purchaseRepo:      purchaseRepo,
		predictionService: predictionService,
		scheduler:         scheduler,
	}
}

// Execute computes the upcoming replenishment forecast.
func (uc *ForecastReplenishmentUseCase) Execute(ctx context.Context, input ForecastReplenishmentInput) (*ForecastReplenishmentOutput, error) {
	items, err := uc.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item catalog: %w", err)
	}

	// Per-item fetch+predict is independent work: dispatch it all at once and
	// join before filtering. Results land in a slot per catalog position so
	// the joined slice keeps catalog order regardless of completion order.
	results := make([]*entity.ItemPurchasePrediction, len(items))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item *entity.GroceryItem) {
			defer wg.Done()
			results[i] = uc.predictItem(ctx, item)
		}(i, item)
	}

	wg.Wait()

	predictions := make([]*entity.ItemPurchasePrediction, 0, len(results))
	for _, r := range results {
		if r != nil && r.Prediction.DaysUntilPurchase <= ForecastWindowDays {
			predictions = append(predictions, r)
		}
	}

	// Soonest first; equal days keep catalog order.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Prediction.DaysUntilPurchase < predictions[j].Prediction.DaysUntilPurchase
	})

	uc.scheduleReminders(ctx, predictions)

	return &ForecastReplenishmentOutput{Predictions: predictions}, nil
}

// predictItem produces the prediction for a single item, or nil when the item
// does not qualify or its strategy invocation fails. A per-item failure never
// fails the batch.
func (uc *ForecastReplenishmentUseCase) predictItem(ctx context.Context, item *entity.GroceryItem) *entity.ItemPurchasePrediction {
	history, err := uc.purchaseRepo.FindByItem(ctx, item.ID)
	if err != nil {
		slog.Warn("Failed to fetch purchase history for forecast",
			"item_id", item.ID,
			"item_name", item.Name,
			"error", err,
		)
		return nil
	}

	if len(history) < MinPurchasesForPrediction {
		return nil
	}

	prediction, err := uc.predictionService.PredictNextPurchase(ctx, item.Name, item.Category, history)
	if err != nil {
		slog.Warn("Prediction strategy failed for item",
			"item_id", item.ID,
			"item_name", item.Name,
			"error", err,
		)
		return nil
	}

	return &entity.ItemPurchasePrediction{
		Item:       item,
		Prediction: prediction,
	}
}

// scheduleReminders schedules a reminder for every prediction due within the
// reminder threshold. Failures are logged and do not affect the forecast.
func (uc *ForecastReplenishmentUseCase) scheduleReminders(ctx context.Context, predictions []*entity.ItemPurchasePrediction) {
	if uc.scheduler == nil {
		return
	}

	for _, p := range predictions {
		if p.Prediction.DaysUntilPurchase > ReminderThresholdDays {
			continue
		}
		if err := uc.scheduler.ScheduleReminder(ctx, p.Item, p.Prediction.PredictedDate); err != nil {
			slog.Warn("Failed to schedule replenishment reminder",
				"item_id", p.Item.ID,
				"item_name", p.Item.Name,
				"error", err,
			)
		}
	}
}
