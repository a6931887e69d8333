// Package email provides reminder delivery via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/grocery-tracker/backend/internal/domain/entity"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
)

// ResendClient implements the adapter.ReminderSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail, toEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// Send delivers a replenishment reminder as an email.
func (c *ResendClient) Send(ctx context.Context, reminder *entity.Reminder) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)
	date := reminder.PredictedDate.Format("Monday, January 2")

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{c.toEmail},
		Subject: fmt.Sprintf("Time to restock: %s", reminder.ItemName),
		Text: fmt.Sprintf(
			"You will likely need %s again around %s. Add it to your shopping list before it runs out.",
			reminder.ItemName, date,
		),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderSendFailed,
			"failed to send reminder email",
			err,
		)
	}

	return nil
}
