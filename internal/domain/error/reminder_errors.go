// Package error defines domain-specific errors for the Grocery Tracker application.
package error

import "errors"

// Reminder domain errors.
var (
	// ErrReminderScheduleFailed is returned when a reminder fails to be scheduled.
	ErrReminderScheduleFailed = errors.New("failed to schedule reminder")

	// ErrReminderSendFailed is returned when a reminder notification fails to be delivered.
	ErrReminderSendFailed = errors.New("failed to send reminder")
)

// ReminderErrorCode defines error codes for reminder errors.
// Format: RMD-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	// Scheduling errors (01XXXX)
	ErrCodeReminderScheduleFailed ReminderErrorCode = "RMD-010001"

	// Delivery errors (02XXXX)
	ErrCodeReminderSendFailed ReminderErrorCode = "RMD-020001"
)

// ReminderError represents a reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
