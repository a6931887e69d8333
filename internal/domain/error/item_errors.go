// Package error defines domain-specific errors for the Grocery Tracker application.
package error

import "errors"

// Grocery item domain errors.
var (
	// ErrItemNotFound is returned when a grocery item is not found in the catalog.
	ErrItemNotFound = errors.New("grocery item not found")

	// ErrEmptyItemName is returned when the item name is empty.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrItemAlreadyExists is returned when an item with the same name already exists.
	ErrItemAlreadyExists = errors.New("grocery item already exists")

	// ErrInvalidPurchaseQuantity is returned when a purchase quantity is zero or negative.
	ErrInvalidPurchaseQuantity = errors.New("invalid purchase quantity")

	// ErrInvalidPurchaseCost is returned when a purchase total cost is negative.
	ErrInvalidPurchaseCost = errors.New("invalid purchase cost")
)

// ItemErrorCode defines error codes for grocery item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeItemNotFound            ItemErrorCode = "ITM-010001"
	ErrCodeEmptyItemName           ItemErrorCode = "ITM-010002"
	ErrCodeItemAlreadyExists       ItemErrorCode = "ITM-010003"
	ErrCodeInvalidPurchaseQuantity ItemErrorCode = "ITM-010004"
	ErrCodeInvalidPurchaseCost     ItemErrorCode = "ITM-010005"
	ErrCodeMissingItemFields       ItemErrorCode = "ITM-010006"
)

// ItemError represents a grocery item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
