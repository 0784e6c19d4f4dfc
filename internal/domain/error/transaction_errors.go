// Package error defines domain-specific errors for the dashboard API.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDescriptionRequired is returned when the transaction description is empty.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrInvalidTransactionType is returned when the transaction type is not a known value.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidPaymentMethod is returned when the payment method is not a known value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidAmount is returned when the transaction amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMissingTransactionDate is returned when the transaction date is not provided.
	ErrMissingTransactionDate = errors.New("date is required")

	// ErrUnresolvedReference is returned when a stored transaction references a
	// category or account that cannot be resolved at read time.
	ErrUnresolvedReference = errors.New("transaction references unknown category or account")

	// ErrInvalidCSVHeader is returned when an imported CSV does not match the template header.
	ErrInvalidCSVHeader = errors.New("csv header does not match template")

	// ErrEmptyCSV is returned when an imported CSV contains no data rows.
	ErrEmptyCSV = errors.New("csv contains no data rows")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDescriptionRequired      TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidPaymentMethod     TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidAmount            TransactionErrorCode = "TXN-010004"
	ErrCodeMissingTransactionDate   TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidCSVHeader         TransactionErrorCode = "TXN-010007"
	ErrCodeEmptyCSV                 TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"

	// Internal errors (99XXXX)
	ErrCodeUnresolvedReference TransactionErrorCode = "TXN-990001"
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
