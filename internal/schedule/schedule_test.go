package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/operant/internal/config"
	operr "github.com/abdul-hamid-achik/operant/internal/errors"
)

type fakeRunner struct {
	calls int
	err   error
}

func (f *fakeRunner) RunSession(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestStart_InvalidSpec(t *testing.T) {
	s := New(config.ScheduleConfig{Spec: "not a cron spec"}, &fakeRunner{}, nil)
	err := s.Start(context.Background())
	if err == nil {
		t.Fatal("expected an error for an invalid spec")
	}
	if operr.GetCategory(err) != operr.CategoryConfig {
		t.Errorf("expected a config-category error, got %v", err)
	}
}

func TestStartStop(t *testing.T) {
	s := New(config.ScheduleConfig{Spec: "0 * * * *"}, &fakeRunner{}, nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}

func TestStop_BeforeStart(t *testing.T) {
	s := New(config.ScheduleConfig{Spec: "0 * * * *"}, &fakeRunner{}, nil)
	s.Stop() // must not panic
}

func TestTick_RunsSession(t *testing.T) {
	runner := &fakeRunner{}
	s := New(config.ScheduleConfig{Spec: "0 * * * *"}, runner, nil)

	s.tick(context.Background())
	if runner.calls != 1 {
		t.Errorf("expected one session run, got %d", runner.calls)
	}
}

func TestTick_SkipsWhenAlreadyRunning(t *testing.T) {
	runner := &fakeRunner{err: operr.SessionAlreadyRunning("abc")}
	s := New(config.ScheduleConfig{Spec: "0 * * * *"}, runner, nil)

	// Must not panic or retry; the tick is simply dropped.
	s.tick(context.Background())
	s.tick(context.Background())
	if runner.calls != 2 {
		t.Errorf("expected each tick to attempt once, got %d", runner.calls)
	}
}

func TestTick_LogsOtherFailures(t *testing.T) {
	runner := &fakeRunner{err: errors.New("unexpected")}
	s := New(config.ScheduleConfig{Spec: "0 * * * *"}, runner, nil)
	s.tick(context.Background())
	if runner.calls != 1 {
		t.Errorf("expected one attempt, got %d", runner.calls)
	}
}
