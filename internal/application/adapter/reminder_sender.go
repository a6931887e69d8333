// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/grocery-tracker/backend/internal/domain/entity"
)

// ReminderSender defines the interface for delivering a due reminder to the
// household via an external provider.
type ReminderSender interface {
	// Send delivers the reminder (e.g., as an email via Resend).
	Send(ctx context.Context, reminder *entity.Reminder) error
}
