// Package error defines domain-specific errors for the FinPulse application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightNotFound is returned when an insight is not found in the system.
	ErrInsightNotFound = errors.New("insight not found")

	// ErrUnauthorizedInsightAccess is returned when the insight does not belong to the user.
	ErrUnauthorizedInsightAccess = errors.New("unauthorized access to insight")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnauthorizedInsightAccess InsightErrorCode = "INS-010001"

	// Not found errors (03XXXX)
	ErrCodeInsightNotFound InsightErrorCode = "INS-030001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
