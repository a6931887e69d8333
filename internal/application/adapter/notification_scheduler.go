// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// NotificationScheduler defines the interface for scheduling replenishment
// reminders. Scheduling is fire-and-forget from the forecaster's point of
// view: a scheduling failure never fails the forecast.
type NotificationScheduler interface {
	// ScheduleReminder schedules a reminder for the item at the given date.
	ScheduleReminder(ctx context.Context, item *entity.GroceryItem, date time.Time) error
}
