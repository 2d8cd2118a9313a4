package inference

import (
	"context"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/operant/internal/config"
)

func TestRateLimited_Delegates(t *testing.T) {
	mock := NewMockCollaborator()
	limited := NewRateLimited(mock, &config.RateLimitConfig{RequestsPerMinute: 6000}, nil)

	p, err := limited.Propose(context.Background(), "ctx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Command != "status" {
		t.Errorf("expected delegated proposal, got %+v", p)
	}
	if mock.Calls() != 1 {
		t.Errorf("expected 1 delegated call, got %d", mock.Calls())
	}
}

func TestRateLimited_CancelledWhileWaiting(t *testing.T) {
	mock := NewMockCollaborator()
	// One request a minute: the second call has to wait.
	limited := NewRateLimited(mock, &config.RateLimitConfig{RequestsPerMinute: 1}, nil)

	if _, err := limited.Propose(context.Background(), "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := limited.Propose(ctx, "second")
	if err == nil {
		t.Fatal("expected a cancellation error while waiting")
	}
	if mock.Calls() != 1 {
		t.Errorf("expected the second call to never reach the collaborator, got %d", mock.Calls())
	}
}
