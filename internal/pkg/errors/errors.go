package errors

import (
	"fmt"
	"net/http"
)

// AppError is the error type every layer below HTTP returns for expected
// failures. Callers branch on the sentinel identity (see codes.go), never
// on the message text.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// NewValidationError wraps a request validation failure with the offending
// detail so clients can see which field was rejected.
func NewValidationError(detail string) *AppError {
	err := New("VALIDATION_ERROR", "Request validation failed", http.StatusBadRequest)
	err.Details["validation"] = detail
	return err
}
