package booking

import "fmt"

// Error codes surfaced to handlers so they can pick a status without
// string-matching messages.
const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
	CodeConflict   = "conflict"
)

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

// ErrorCode extracts the service error code, or "" for plain errors.
func ErrorCode(err error) string {
	if se, ok := err.(*ServiceError); ok {
		return se.Code
	}
	return ""
}
