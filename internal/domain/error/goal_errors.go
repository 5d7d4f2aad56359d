// Package error defines domain-specific errors for the VendaGame application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidReferenceMonth is returned when the reference month does not match YYYY-MM.
	ErrInvalidReferenceMonth = errors.New("invalid reference month")

	// ErrMissingSeller is returned when an individual goal is defined without a seller.
	ErrMissingSeller = errors.New("seller is required")

	// ErrSellerNotInCompany is returned when the goal's seller belongs to another company.
	ErrSellerNotInCompany = errors.New("seller does not belong to company")

	// ErrNotAuthorizedToManageGoals is returned when the caller may not define goals for the company.
	ErrNotAuthorizedToManageGoals = errors.New("not authorized to manage goals")

	// ErrGoalConflict is returned when a concurrent upsert on the same uniqueness key
	// cannot be resolved atomically by the storage layer.
	ErrGoalConflict = errors.New("conflicting goal definition")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidReferenceMonth GoalErrorCode = "GOL-010002"
	ErrCodeMissingSeller         GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields     GoalErrorCode = "GOL-010004"

	// Authorization errors (02XXXX)
	ErrCodeSellerNotInCompany         GoalErrorCode = "GOL-020001"
	ErrCodeNotAuthorizedToManageGoals GoalErrorCode = "GOL-020002"

	// Lookup/conflict errors (03XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-030001"
	ErrCodeGoalConflict GoalErrorCode = "GOL-030002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
