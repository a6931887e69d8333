// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

func purchasesOnDays(days ...int) []*entity.Purchase {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	itemID := uuid.New()
	purchases := make([]*entity.Purchase, len(days))
	for i, d := range days {
		purchases[i] = entity.NewPurchase(itemID, 1, decimal.NewFromInt(10), base.AddDate(0, 0, d), "")
	}
	return purchases
}

func TestIntervalPredictionService_PredictNextPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("regular weekly purchases predict one mean gap ahead", func(t *testing.T) {
		s := NewIntervalPredictionService()
		s.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

		p, err := s.PredictNextPurchase(ctx, "Milk", "Dairy", purchasesOnDays(0, 7, 14))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantDate := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)
		if !p.PredictedDate.Equal(wantDate) {
			t.Errorf("expected predicted date %s, got %s", wantDate, p.PredictedDate)
		}
		if p.DaysUntilPurchase != 7 {
			t.Errorf("expected 7 days until purchase, got %d", p.DaysUntilPurchase)
		}
		if p.Confidence != 1 {
			t.Errorf("expected full confidence for zero-variance gaps, got %v", p.Confidence)
		}
		if p.Strategy != "interval" {
			t.Errorf("expected interval strategy, got %s", p.Strategy)
		}
	})

	t.Run("irregular gaps lower confidence", func(t *testing.T) {
		s := NewIntervalPredictionService()
		s.now = func() time.Time { return time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC) }

		regular, err := s.PredictNextPurchase(ctx, "Milk", "", purchasesOnDays(0, 7, 14))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		erratic, err := s.PredictNextPurchase(ctx, "Snacks", "", purchasesOnDays(0, 2, 16))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if erratic.Confidence >= regular.Confidence {
			t.Errorf("expected erratic history to score below regular: %v >= %v",
				erratic.Confidence, regular.Confidence)
		}
	})

	t.Run("fractional mean gap rounds to the nearest day", func(t *testing.T) {
		s := NewIntervalPredictionService()
		s.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

		// Gaps of 3 and 4 days, mean 3.5, rounds to 4.
		p, err := s.PredictNextPurchase(ctx, "Bread", "", purchasesOnDays(0, 3, 7))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
		if !p.PredictedDate.Equal(wantDate) {
			t.Errorf("expected predicted date %s, got %s", wantDate, p.PredictedDate)
		}
	})

	t.Run("past predicted date yields negative days until purchase", func(t *testing.T) {
		s := NewIntervalPredictionService()
		s.now = func() time.Time { return time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC) }

		p, err := s.PredictNextPurchase(ctx, "Milk", "", purchasesOnDays(0, 7, 14))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.DaysUntilPurchase != -3 {
			t.Errorf("expected -3 days until purchase, got %d", p.DaysUntilPurchase)
		}
	})

	t.Run("confidence follows the variance formula", func(t *testing.T) {
		s := NewIntervalPredictionService()
		s.now = func() time.Time { return time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC) }

		// Gaps 2 and 16: mean 9, stddev 7.
		p, err := s.PredictNextPurchase(ctx, "Snacks", "", purchasesOnDays(0, 2, 18))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := 1 / (1 + 7.0/9.0)
		if math.Abs(p.Confidence-want) > 1e-9 {
			t.Errorf("expected confidence %v, got %v", want, p.Confidence)
		}
	})

	t.Run("too short a history is rejected", func(t *testing.T) {
		s := NewIntervalPredictionService()
		if _, err := s.PredictNextPurchase(ctx, "Milk", "", purchasesOnDays(0)); err == nil {
			t.Error("expected error for single-purchase history")
		}
	})

	t.Run("out-of-order history is rejected", func(t *testing.T) {
		s := NewIntervalPredictionService()
		if _, err := s.PredictNextPurchase(ctx, "Milk", "", purchasesOnDays(7, 0)); err == nil {
			t.Error("expected error for non-chronological history")
		}
	})

	t.Run("same-day purchases are rejected", func(t *testing.T) {
		s := NewIntervalPredictionService()
		if _, err := s.PredictNextPurchase(ctx, "Milk", "", purchasesOnDays(0, 0)); err == nil {
			t.Error("expected error when all purchases share a day")
		}
	})
}
