// Package error defines domain-specific errors for the Grocery Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetDateRange is returned when the start date is not before the end date.
	ErrInvalidBudgetDateRange = errors.New("invalid budget date range")

	// ErrEmptyBudgetName is returned when the budget name is empty.
	ErrEmptyBudgetName = errors.New("budget name cannot be empty")

	// ErrBudgetDeactivationFailed is returned when an overlapping budget could not be deactivated.
	ErrBudgetDeactivationFailed = errors.New("failed to deactivate overlapping budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetDateRange BudgetErrorCode = "BDG-010002"
	ErrCodeEmptyBudgetName        BudgetErrorCode = "BDG-010003"
	ErrCodeBudgetNotFound         BudgetErrorCode = "BDG-010004"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BDG-010005"

	// Processing errors (02XXXX)
	ErrCodeBudgetDeactivationFailed BudgetErrorCode = "BDG-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
