// Package error defines domain-specific errors for the dashboard API.
package error

import "errors"

// File storage domain errors.
var (
	// ErrStorageNotConfigured is returned when receipt storage has no backing bucket.
	ErrStorageNotConfigured = errors.New("file storage is not configured")

	// ErrEmptyUpload is returned when an upload request carries no file.
	ErrEmptyUpload = errors.New("upload file is required")

	// ErrUploadFailed is returned when writing the object to storage fails.
	ErrUploadFailed = errors.New("upload failed")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STG-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyUpload StorageErrorCode = "STG-010001"

	// Network errors (03XXXX)
	ErrCodeStorageNotConfigured StorageErrorCode = "STG-030001"
	ErrCodeUploadFailed         StorageErrorCode = "STG-030002"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
