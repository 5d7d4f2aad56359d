// Package error defines domain-specific errors for the VendaGame application.
package error

import "errors"

// Ranking and dashboard domain errors.
var (
	// ErrMissingCompanyScope is returned when no company could be resolved for the caller.
	ErrMissingCompanyScope = errors.New("company scope is required")

	// ErrNotAuthorizedForCompany is returned when the caller may not view the requested company.
	ErrNotAuthorizedForCompany = errors.New("not authorized for company")

	// ErrInvalidRankingMonth is returned when the ranking month does not match YYYY-MM.
	ErrInvalidRankingMonth = errors.New("invalid ranking month")

	// ErrInvalidYear is returned when a dashboard year is out of range.
	ErrInvalidYear = errors.New("invalid year")
)

// RankingErrorCode defines error codes for ranking errors.
// Format: RNK-XXYYYY where XX is category and YYYY is specific error.
type RankingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRankingMonth RankingErrorCode = "RNK-010001"
	ErrCodeInvalidYear         RankingErrorCode = "RNK-010002"

	// Authorization errors (02XXXX)
	ErrCodeMissingCompanyScope     RankingErrorCode = "RNK-020001"
	ErrCodeNotAuthorizedForCompany RankingErrorCode = "RNK-020002"

	// Internal errors (99XXXX)
	ErrCodeRankingInternalError RankingErrorCode = "RNK-990001"
)

// RankingError represents a ranking error with code and message.
type RankingError struct {
	Code    RankingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RankingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RankingError) Unwrap() error {
	return e.Err
}

// NewRankingError creates a new RankingError with the given code and message.
func NewRankingError(code RankingErrorCode, message string, err error) *RankingError {
	return &RankingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
