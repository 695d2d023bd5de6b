// Package error defines domain-specific errors for the FinPulse application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidCategory is returned when the transaction category is not in the enumeration.
	ErrInvalidCategory = errors.New("invalid transaction category")

	// ErrInvalidAmount is returned when the transaction amount is zero.
	ErrInvalidAmount = errors.New("transaction amount must be non-zero")

	// ErrMissingTransactionFields is returned when required transaction fields are missing.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")

	// ErrTransactionAccountNotFound is returned when the referenced account does not exist.
	ErrTransactionAccountNotFound = errors.New("account not found for transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategory             TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount               TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionFields    TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionAccountNotFound  TransactionErrorCode = "TXN-010004"

	// Not found errors (03XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-030001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
