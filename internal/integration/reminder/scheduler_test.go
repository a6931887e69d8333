// Package reminder provides replenishment reminder scheduling and delivery.
package reminder

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestScheduler_ScheduleReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the reminder scored by due time", func(t *testing.T) {
		client := newTestRedis(t)
		s := NewScheduler(client)

		item := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
		due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

		if err := s.ScheduleReminder(ctx, item, due); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		members, err := client.ZRangeWithScores(ctx, queueKey, 0, -1).Result()
		if err != nil {
			t.Fatalf("failed to read queue: %v", err)
		}
		if len(members) != 1 {
			t.Fatalf("expected 1 queued reminder, got %d", len(members))
		}
		if int64(members[0].Score) != due.Unix() {
			t.Errorf("expected score %d, got %v", due.Unix(), members[0].Score)
		}

		var stored scheduledReminder
		if err := json.Unmarshal([]byte(members[0].Member.(string)), &stored); err != nil {
			t.Fatalf("failed to decode member: %v", err)
		}
		if stored.ItemID != item.ID {
			t.Errorf("expected item ID %s, got %s", item.ID, stored.ItemID)
		}
		if stored.ItemName != "Milk" {
			t.Errorf("expected item name Milk, got %s", stored.ItemName)
		}
	})

	t.Run("rescheduling an item replaces its previous entry", func(t *testing.T) {
		client := newTestRedis(t)
		s := NewScheduler(client)

		item := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
		first := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		second := time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC)

		if err := s.ScheduleReminder(ctx, item, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.ScheduleReminder(ctx, item, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		members, err := client.ZRangeWithScores(ctx, queueKey, 0, -1).Result()
		if err != nil {
			t.Fatalf("failed to read queue: %v", err)
		}
		if len(members) != 1 {
			t.Fatalf("expected 1 queued reminder after reschedule, got %d", len(members))
		}
		if int64(members[0].Score) != second.Unix() {
			t.Errorf("expected replaced score %d, got %v", second.Unix(), members[0].Score)
		}
	})

	t.Run("different items queue independently", func(t *testing.T) {
		client := newTestRedis(t)
		s := NewScheduler(client)

		milk := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
		bread := entity.NewGroceryItem("Bread", "", "Bakery", "unit", "", nil)
		due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

		if err := s.ScheduleReminder(ctx, milk, due); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.ScheduleReminder(ctx, bread, due.AddDate(0, 0, 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, err := client.ZCard(ctx, queueKey).Result()
		if err != nil {
			t.Fatalf("failed to count queue: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 queued reminders, got %d", count)
		}
	})
}

// recordingSender captures delivered reminders.
type recordingSender struct {
	mu        sync.Mutex
	delivered []*entity.Reminder
	err       error
}

func (r *recordingSender) Send(ctx context.Context, reminder *entity.Reminder) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered = append(r.delivered, reminder)
	return nil
}

func TestWorker_ProcessDue(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers due reminders and removes them from the queue", func(t *testing.T) {
		client := newTestRedis(t)
		s := NewScheduler(client)

		milk := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
		bread := entity.NewGroceryItem("Bread", "", "Bakery", "unit", "", nil)

		past := time.Now().UTC().Add(-1 * time.Hour)
		future := time.Now().UTC().Add(48 * time.Hour)

		if err := s.ScheduleReminder(ctx, milk, past); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.ScheduleReminder(ctx, bread, future); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sender := &recordingSender{}
		w := NewWorker(client, sender, DefaultWorkerConfig())
		w.processDue(ctx)

		if len(sender.delivered) != 1 {
			t.Fatalf("expected 1 delivered reminder, got %d", len(sender.delivered))
		}
		if sender.delivered[0].ItemName != "Milk" {
			t.Errorf("expected Milk reminder, got %s", sender.delivered[0].ItemName)
		}

		count, err := client.ZCard(ctx, queueKey).Result()
		if err != nil {
			t.Fatalf("failed to count queue: %v", err)
		}
		if count != 1 {
			t.Errorf("expected the future reminder to stay queued, got %d entries", count)
		}
	})

	t.Run("failed delivery keeps the reminder for retry", func(t *testing.T) {
		client := newTestRedis(t)
		s := NewScheduler(client)

		milk := entity.NewGroceryItem("Milk", "", "Dairy", "L", "", nil)
		if err := s.ScheduleReminder(ctx, milk, time.Now().UTC().Add(-1*time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sender := &recordingSender{err: context.DeadlineExceeded}
		w := NewWorker(client, sender, DefaultWorkerConfig())
		w.processDue(ctx)

		count, err := client.ZCard(ctx, queueKey).Result()
		if err != nil {
			t.Fatalf("failed to count queue: %v", err)
		}
		if count != 1 {
			t.Errorf("expected failed reminder to stay queued, got %d entries", count)
		}
	})

	t.Run("malformed entries are dropped", func(t *testing.T) {
		client := newTestRedis(t)

		if err := client.ZAdd(ctx, queueKey, redis.Z{
			Score:  float64(time.Now().UTC().Add(-1 * time.Hour).Unix()),
			Member: "not json",
		}).Err(); err != nil {
			t.Fatalf("failed to seed queue: %v", err)
		}

		sender := &recordingSender{}
		w := NewWorker(client, sender, DefaultWorkerConfig())
		w.processDue(ctx)

		if len(sender.delivered) != 0 {
			t.Errorf("expected nothing delivered, got %d", len(sender.delivered))
		}

		count, err := client.ZCard(ctx, queueKey).Result()
		if err != nil {
			t.Fatalf("failed to count queue: %v", err)
		}
		if count != 0 {
			t.Errorf("expected malformed entry to be dropped, got %d entries", count)
		}
	})
}
