// Package error defines domain-specific errors for the FinPulse application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountType is returned when the account type is not one of the known types.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrUnauthorizedAccountAccess is returned when the account does not belong to the user.
	ErrUnauthorizedAccountAccess = errors.New("unauthorized access to account")

	// ErrMissingAccountFields is returned when required account fields are missing.
	ErrMissingAccountFields = errors.New("missing required account fields")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType        AccountErrorCode = "ACC-010001"
	ErrCodeMissingAccountFields      AccountErrorCode = "ACC-010002"
	ErrCodeUnauthorizedAccountAccess AccountErrorCode = "ACC-010003"

	// Not found errors (03XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-030001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
