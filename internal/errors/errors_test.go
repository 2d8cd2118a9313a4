package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := StoreFailed("open", fmt.Errorf("disk full"))
	msg := err.Error()
	if !strings.Contains(msg, "[store]") {
		t.Errorf("expected category in message, got %q", msg)
	}
	if !strings.Contains(msg, "store_failed") {
		t.Errorf("expected code in message, got %q", msg)
	}
	if !strings.Contains(msg, "disk full") {
		t.Errorf("expected cause in message, got %q", msg)
	}

	bare := SessionAlreadyRunning("abc")
	if strings.Contains(bare.Error(), "<nil>") {
		t.Errorf("causeless error should not render a nil cause: %q", bare.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := InferenceRequestFailed(cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if stderrors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestIs_MatchesByCodeAndCategory(t *testing.T) {
	a := CommandNotFound("status")
	b := CommandNotFound("other")
	if !stderrors.Is(a, b) {
		t.Error("expected errors with the same code and category to match")
	}
	if stderrors.Is(a, DuplicateCommand("status")) {
		t.Error("expected errors with different codes not to match")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(InferenceTimeout(nil)) {
		t.Error("expected inference timeouts to be retryable")
	}
	if IsRetryable(DuplicateCommand("x")) {
		t.Error("expected duplicate registration not to be retryable")
	}
	if IsRetryable(nil) {
		t.Error("expected nil not to be retryable")
	}
	if IsRetryable(fmt.Errorf("plain")) {
		t.Error("expected plain errors not to be retryable")
	}

	// HandlerFailed inherits retryability from its cause.
	if !IsRetryable(HandlerFailed("x", StoreFailed("put", nil))) {
		t.Error("expected retryable cause to propagate")
	}
	if IsRetryable(HandlerFailed("x", fmt.Errorf("logic bug"))) {
		t.Error("expected non-retryable cause to propagate")
	}
}

func TestGetCategory(t *testing.T) {
	if GetCategory(SessionAlreadyRunning("id")) != CategoryAgent {
		t.Error("expected agent category")
	}
	if GetCategory(fmt.Errorf("plain")) != "" {
		t.Error("expected empty category for plain errors")
	}

	// Wrapped errors still resolve.
	wrapped := fmt.Errorf("while starting: %w", ConfigLoadFailed("a.yaml", nil))
	if GetCategory(wrapped) != CategoryConfig {
		t.Error("expected category through wrapping")
	}
}

func TestGetUserMessage(t *testing.T) {
	err := ProposalInvalid("thought")
	if got := GetUserMessage(err); !strings.Contains(got, `"thought"`) {
		t.Errorf("expected field name in user message, got %q", got)
	}
	if GetUserMessage(nil) != "" {
		t.Error("expected empty message for nil")
	}
	if GetUserMessage(fmt.Errorf("boom")) != "boom" {
		t.Error("expected Error() for plain errors")
	}
}
