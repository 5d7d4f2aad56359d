// Package error defines domain-specific errors for the VendaGame application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidSaleAmount is returned when the sale amount is negative or not numeric.
	ErrInvalidSaleAmount = errors.New("invalid sale amount")

	// ErrInvalidSaleDate is returned when the sale date cannot be parsed.
	ErrInvalidSaleDate = errors.New("invalid sale date")

	// ErrInvalidSaleStatus is returned when the sale status is not a known state.
	ErrInvalidSaleStatus = errors.New("invalid sale status")

	// ErrNotAuthorizedToModifySale is returned when the caller may not change a sale.
	ErrNotAuthorizedToModifySale = errors.New("not authorized to modify sale")

	// ErrSaleSellerNotFound is returned when the sale references an unknown seller.
	ErrSaleSellerNotFound = errors.New("seller not found")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSaleAmount SaleErrorCode = "SAL-010001"
	ErrCodeInvalidSaleDate   SaleErrorCode = "SAL-010002"
	ErrCodeInvalidSaleStatus SaleErrorCode = "SAL-010003"
	ErrCodeMissingSaleFields SaleErrorCode = "SAL-010004"

	// Authorization errors (02XXXX)
	ErrCodeNotAuthorizedSale SaleErrorCode = "SAL-020001"

	// Lookup errors (03XXXX)
	ErrCodeSaleNotFound       SaleErrorCode = "SAL-030001"
	ErrCodeSaleSellerNotFound SaleErrorCode = "SAL-030002"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
