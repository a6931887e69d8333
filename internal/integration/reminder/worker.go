// Package reminder provides replenishment reminder scheduling and delivery.
package reminder

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// Worker polls the reminder queue and delivers due reminders.
type Worker struct {
	client       *redis.Client
	sender       adapter.ReminderSender
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the reminder worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 1 * time.Minute,
		BatchSize:    20,
	}
}

// NewWorker creates a new reminder worker.
func NewWorker(client *redis.Client, sender adapter.ReminderSender, config WorkerConfig) *Worker {
	return &Worker{
		client:       client,
		sender:       sender,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processDue(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.processDue(ctx)
		}
	}
}

// processDue delivers a batch of reminders whose due time has passed. A
// reminder is removed from the queue only after successful delivery, so a
// failed send is retried on the next poll.
func (w *Worker) processDue(ctx context.Context) {
	now := time.Now().UTC().Unix()

	members, err := w.client.ZRangeByScore(ctx, queueKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now, 10),
		Count: int64(w.batchSize),
	}).Result()
	if err != nil {
		slog.Error("Failed to fetch due reminders", "error", err)
		return
	}

	for _, member := range members {
		var due scheduledReminder
		if err := json.Unmarshal([]byte(member), &due); err != nil {
			// Unparseable entries would otherwise poll forever
			slog.Error("Dropping malformed reminder entry", "error", err)
			_ = w.client.ZRem(ctx, queueKey, member).Err()
			continue
		}

		reminder := &entity.Reminder{
			ItemID:        due.ItemID,
			ItemName:      due.ItemName,
			PredictedDate: due.PredictedDate,
		}

		if err := w.sender.Send(ctx, reminder); err != nil {
			slog.Warn("Failed to deliver reminder, will retry",
				"item_id", due.ItemID,
				"item_name", due.ItemName,
				"error", err,
			)
			continue
		}

		if err := w.client.ZRem(ctx, queueKey, member).Err(); err != nil {
			slog.Error("Failed to remove delivered reminder", "error", err)
			continue
		}

		slog.Info("Reminder delivered",
			"item_id", due.ItemID,
			"item_name", due.ItemName,
		)
	}
}
