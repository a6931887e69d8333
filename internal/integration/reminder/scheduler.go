// Package reminder provides replenishment reminder scheduling and delivery.
package reminder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// queueKey is the Redis sorted set holding scheduled reminders, scored by
// due time (unix seconds).
const queueKey = "reminders:scheduled"

// scheduledReminder is the JSON payload stored as a sorted set member.
type scheduledReminder struct {
	ItemID        uuid.UUID `json:"item_id"`
	ItemName      string    `json:"item_name"`
	PredictedDate time.Time `json:"predicted_date"`
}

// Scheduler implements the adapter.NotificationScheduler interface on a Redis
// sorted set. Scheduling the same item again replaces its previous entry.
type Scheduler struct {
	client *redis.Client
}

// NewScheduler creates a new reminder scheduler instance.
func NewScheduler(client *redis.Client) adapter.NotificationScheduler {
	return &Scheduler{
		client: client,
	}
}

// ScheduleReminder schedules a reminder for the item at the given date.
func (s *Scheduler) ScheduleReminder(ctx context.Context, item *entity.GroceryItem, date time.Time) error {
	payload, err := json.Marshal(scheduledReminder{
		ItemID:        item.ID,
		ItemName:      item.Name,
		PredictedDate: date.UTC(),
	})
	if err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderScheduleFailed,
			"failed to encode reminder",
			err,
		)
	}

	// Drop any previously scheduled reminder for this item so a fresher
	// forecast supersedes a stale one.
	if err := s.removeByItem(ctx, item.ID); err != nil {
		return err
	}

	if err := s.client.ZAdd(ctx, queueKey, redis.Z{
		Score:  float64(date.UTC().Unix()),
		Member: string(payload),
	}).Err(); err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderScheduleFailed,
			"failed to schedule reminder",
			err,
		)
	}

	return nil
}

// removeByItem removes any scheduled reminder carrying the given item ID.
func (s *Scheduler) removeByItem(ctx context.Context, itemID uuid.UUID) error {
	members, err := s.client.ZRange(ctx, queueKey, 0, -1).Result()
	if err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderScheduleFailed,
			"failed to read reminder queue",
			err,
		)
	}

	for _, member := range members {
		var existing scheduledReminder
		if json.Unmarshal([]byte(member), &existing) != nil {
			continue
		}
		if existing.ItemID == itemID {
			if err := s.client.ZRem(ctx, queueKey, member).Err(); err != nil {
				return domainerror.NewReminderError(
					domainerror.ErrCodeReminderScheduleFailed,
					"failed to replace scheduled reminder",
					err,
				)
			}
		}
	}

	return nil
}
