// Package error defines domain-specific errors for the FinPulse application.
package error

import "errors"

// Engine domain errors. The taxonomy distinguishes "nothing to analyze"
// (insufficient data) from "bad input" (validation) from "internal error";
// none are retried inside the engine.
var (
	// ErrNoAccounts is returned when a user has no accounts to analyze.
	ErrNoAccounts = errors.New("no accounts to analyze")

	// ErrNoTransactions is returned when an operation requires at least one
	// transaction and none exist in the requested window.
	ErrNoTransactions = errors.New("no transactions to analyze")

	// ErrInvalidAnalysisWindow is returned when the requested window is malformed.
	ErrInvalidAnalysisWindow = errors.New("invalid analysis window")

	// ErrScoreNotFound is returned when no health score has been calculated yet.
	ErrScoreNotFound = errors.New("no health score calculated yet")

	// ErrComputation is a defensive catch-all for arithmetic edge cases.
	ErrComputation = errors.New("computation error")
)

// EngineErrorCode defines error codes for engine errors.
// Format: ENG-XXYYYY where XX is category and YYYY is specific error.
type EngineErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAnalysisWindow EngineErrorCode = "ENG-010001"

	// Insufficient data errors (02XXXX)
	ErrCodeNoAccounts     EngineErrorCode = "ENG-020001"
	ErrCodeNoTransactions EngineErrorCode = "ENG-020002"

	// Not found errors (03XXXX)
	ErrCodeScoreNotFound EngineErrorCode = "ENG-030001"

	// Internal errors (99XXXX)
	ErrCodeComputation EngineErrorCode = "ENG-990001"
)

// EngineError represents an engine error with code and message.
type EngineError struct {
	Code    EngineErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError creates a new EngineError with the given code and message.
func NewEngineError(code EngineErrorCode, message string, err error) *EngineError {
	return &EngineError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsInsufficientData reports whether the error is an insufficient data
// engine error, as opposed to a validation or internal failure.
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrNoAccounts) || errors.Is(err, ErrNoTransactions)
}
