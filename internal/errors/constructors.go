package errors

import "fmt"

// InferenceUnavailable creates an error for when the inference backend is unreachable.
func InferenceUnavailable(cause error) *OperantError {
	return &OperantError{
		Category:  CategoryInference,
		Code:      "inference_unavailable",
		Message:   "inference service is unavailable",
		Retryable: true,
		Cause:     cause,
	}
}

// InferenceRequestFailed creates an error for when a proposal request fails.
func InferenceRequestFailed(cause error) *OperantError {
	return &OperantError{
		Category:  CategoryInference,
		Code:      "inference_request_failed",
		Message:   "proposal request failed",
		Retryable: true,
		Cause:     cause,
	}
}

// InferenceTimeout creates an error for when a proposal request times out.
func InferenceTimeout(cause error) *OperantError {
	return &OperantError{
		Category:  CategoryInference,
		Code:      "inference_timeout",
		Message:   "proposal request timed out",
		Retryable: true,
		Cause:     cause,
	}
}

// ProposalInvalid creates an error for a proposal with missing or empty fields.
func ProposalInvalid(field string) *OperantError {
	return &OperantError{
		Category:  CategoryInference,
		Code:      "proposal_invalid",
		Message:   fmt.Sprintf("proposal is missing required field %q", field),
		Retryable: true,
	}
}

// CommandNotFound creates an error for when a requested command does not exist.
func CommandNotFound(name string) *OperantError {
	return &OperantError{
		Category:  CategoryCommand,
		Code:      "command_not_found",
		Message:   fmt.Sprintf("command %q not found", name),
		Retryable: false,
	}
}

// DuplicateCommand creates an error for registering a command name twice.
func DuplicateCommand(name string) *OperantError {
	return &OperantError{
		Category:  CategoryCommand,
		Code:      "duplicate_command",
		Message:   fmt.Sprintf("command %q is already registered", name),
		Retryable: false,
	}
}

// HandlerFailed creates an error for when a command handler fails.
// Retryability depends on the underlying cause.
func HandlerFailed(name string, cause error) *OperantError {
	return &OperantError{
		Category:  CategoryCommand,
		Code:      "handler_failed",
		Message:   fmt.Sprintf("command %q failed", name),
		Retryable: IsRetryable(cause),
		Cause:     cause,
	}
}

// SessionAlreadyRunning creates an error for starting a second concurrent session.
func SessionAlreadyRunning(id string) *OperantError {
	return &OperantError{
		Category:  CategoryAgent,
		Code:      "session_already_running",
		Message:   fmt.Sprintf("session %s is already running", id),
		Retryable: false,
	}
}

// StoreFailed creates an error for when a persistence operation fails.
func StoreFailed(op string, cause error) *OperantError {
	return &OperantError{
		Category:  CategoryStore,
		Code:      "store_failed",
		Message:   fmt.Sprintf("store operation %q failed", op),
		Retryable: true,
		Cause:     cause,
	}
}

// ConfigLoadFailed creates an error for when configuration loading fails.
func ConfigLoadFailed(path string, cause error) *OperantError {
	return &OperantError{
		Category:  CategoryConfig,
		Code:      "config_load_failed",
		Message:   fmt.Sprintf("failed to load config from %q", path),
		Retryable: false,
		Cause:     cause,
	}
}
