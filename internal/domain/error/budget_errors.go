// Package error defines domain-specific errors for the FinPulse application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetPeriod is returned when the budget period is not valid.
	ErrInvalidBudgetPeriod = errors.New("budget period must be: weekly, monthly, or yearly")

	// ErrInvalidTotalBudget is returned when the total budget is zero or negative.
	ErrInvalidTotalBudget = errors.New("total budget must be positive")

	// ErrInvalidBudgetDateRange is returned when the end date is before the start date.
	ErrInvalidBudgetDateRange = errors.New("end date must be after start date")

	// ErrNegativeAllocation is returned when an allocation amount is negative.
	ErrNegativeAllocation = errors.New("allocated amount must not be negative")

	// ErrInvalidAllocationCategory is returned when an allocation references an unknown category.
	ErrInvalidAllocationCategory = errors.New("invalid allocation category")

	// ErrDuplicateAllocationCategory is returned when two allocations share a category.
	ErrDuplicateAllocationCategory = errors.New("duplicate allocation category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetPeriod         BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidTotalBudget          BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetDateRange      BudgetErrorCode = "BDG-010003"
	ErrCodeNegativeAllocation          BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidAllocationCategory   BudgetErrorCode = "BDG-010005"
	ErrCodeDuplicateAllocationCategory BudgetErrorCode = "BDG-010006"

	// Not found errors (03XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-030001"
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
