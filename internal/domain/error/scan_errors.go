// Package error defines domain-specific errors for the Grocery Tracker application.
package error

import "errors"

// Barcode scan domain errors.
var (
	// ErrEmptyBarcode is returned when an empty barcode is submitted for lookup.
	ErrEmptyBarcode = errors.New("barcode cannot be empty")

	// ErrProductLookupFailed is returned when the product metadata lookup fails.
	ErrProductLookupFailed = errors.New("product lookup failed")
)

// ScanErrorCode defines error codes for barcode scan errors.
// Format: SCN-XXYYYY where XX is category and YYYY is specific error.
type ScanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyBarcode ScanErrorCode = "SCN-010001"

	// Upstream errors (02XXXX)
	ErrCodeProductLookupFailed ScanErrorCode = "SCN-020001"
)

// ScanError represents a barcode scan error with code and message.
type ScanError struct {
	Code    ScanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError with the given code and message.
func NewScanError(code ScanErrorCode, message string, err error) *ScanError {
	return &ScanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
