// Package error defines domain-specific errors for the dashboard API.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrEmptyGoalQuery is returned when the calculator is submitted without text.
	ErrEmptyGoalQuery = errors.New("goal query is required")

	// ErrAdvisorUnavailable is returned when no advisor backend is configured.
	ErrAdvisorUnavailable = errors.New("advisor service is not configured")

	// ErrAdvisorUnreachable is returned when the advisor call fails at the
	// transport level (unreachable host, non-2xx status, timeout, or a body
	// that is not valid JSON).
	ErrAdvisorUnreachable = errors.New("advisor service unreachable")

	// ErrSupersededSubmission is returned when a submission completes after a
	// newer one for the same session has already been started. The stale
	// result is discarded, never displayed.
	ErrSupersededSubmission = errors.New("submission superseded by a newer query")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyGoalQuery GoalErrorCode = "GOL-010001"

	// Network errors (03XXXX) — retryable by the user, never automatically.
	ErrCodeAdvisorUnavailable GoalErrorCode = "GOL-030001"
	ErrCodeAdvisorUnreachable GoalErrorCode = "GOL-030002"

	// Ordering errors (04XXXX)
	ErrCodeSupersededSubmission GoalErrorCode = "GOL-040001"
)

// GoalError represents a savings goal error with code and message.
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
