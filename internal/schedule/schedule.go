// Package schedule triggers agent sessions on a cron schedule. A tick that
// lands while a session is still running is skipped, never queued.
package schedule

import (
	"context"

	rcron "github.com/robfig/cron/v3"

	"github.com/abdul-hamid-achik/operant/internal/config"
	operr "github.com/abdul-hamid-achik/operant/internal/errors"
	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// Runner starts one agent session. It returns an error when a session is
// already in flight.
type Runner interface {
	RunSession(ctx context.Context) error
}

// Scheduler drives a Runner from a standard five-field cron expression.
type Scheduler struct {
	cfg    config.ScheduleConfig
	runner Runner
	log    *logging.Logger
	cron   *rcron.Cron
}

// New creates a scheduler. It does nothing until Start.
func New(cfg config.ScheduleConfig, runner Runner, log *logging.Logger) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		runner: runner,
		log:    log.WithPrefix("schedule"),
	}
}

// Start registers the schedule and begins ticking. The context bounds every
// triggered session.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron = rcron.New()

	_, err := s.cron.AddFunc(s.cfg.Spec, func() { s.tick(ctx) })
	if err != nil {
		return operr.ConfigLoadFailed("schedule.spec", err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", logging.F("spec", s.cfg.Spec))
	return nil
}

// tick runs one scheduled session. An already-running session is skipped.
func (s *Scheduler) tick(ctx context.Context) {
	s.log.Info("scheduled session triggered", logging.F("spec", s.cfg.Spec))
	if err := s.runner.RunSession(ctx); err != nil {
		if operr.GetCategory(err) == operr.CategoryAgent {
			s.log.Info("session already running, skipping tick")
			return
		}
		s.log.Warn("scheduled session failed", logging.Error(err))
	}
}

// Stop ends scheduling and waits for an in-flight trigger callback to
// return.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}
