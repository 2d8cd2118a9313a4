package errors

import (
	"errors"
	"fmt"
)

// Category groups errors by subsystem
type Category string

const (
	CategoryInference Category = "inference"
	CategoryCommand   Category = "command"
	CategoryAgent     Category = "agent"
	CategoryStore     Category = "store"
	CategoryConfig    Category = "config"
)

// OperantError is the structured error type for the project
type OperantError struct {
	Category  Category
	Code      string
	Message   string
	Retryable bool
	Cause     error
}

func (e *OperantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Code, e.Message)
}

func (e *OperantError) Unwrap() error {
	return e.Cause
}

func (e *OperantError) Is(target error) bool {
	t, ok := target.(*OperantError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Category == t.Category
}

// IsRetryable checks whether an error is retryable.
// Returns false for nil errors or non-OperantError types.
func IsRetryable(err error) bool {
	var oe *OperantError
	if errors.As(err, &oe) {
		return oe.Retryable
	}
	return false
}

// GetCategory extracts the error category from an OperantError.
// Returns an empty Category for nil errors or non-OperantError types.
func GetCategory(err error) Category {
	var oe *OperantError
	if errors.As(err, &oe) {
		return oe.Category
	}
	return ""
}

// GetUserMessage returns a user-friendly message for the error.
// For OperantError it returns the Message field; for other errors it returns Error().
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}
	var oe *OperantError
	if errors.As(err, &oe) {
		return oe.Message
	}
	return err.Error()
}
