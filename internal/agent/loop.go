// Package agent implements the bounded action loop: it obtains proposals
// from the inference collaborator, validates them, drives the command
// dispatch engine, persists and replays results, and manages the session
// lifecycle.
package agent

import (
	"context"
	"sync"
	"time"

	"github.com/abdul-hamid-achik/operant/internal/command"
	"github.com/abdul-hamid-achik/operant/internal/config"
	operr "github.com/abdul-hamid-achik/operant/internal/errors"
	"github.com/abdul-hamid-achik/operant/internal/inference"
	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// Store is the persistence collaborator the loop depends on. Every call is
// best-effort from the loop's perspective: failures are logged and never
// corrupt loop state.
type Store interface {
	CreateActionRecord(ctx context.Context, sessionID, thought, plan, command string) (string, error)
	UpdateActionRecord(ctx context.Context, id, result string) error
	AppendShortTermMessage(ctx context.Context, role, content, sessionID string) error
	ClearShortTermHistory(ctx context.Context) error
	SetActiveStatus(ctx context.Context, active bool) error
}

// Loop is the agent scheduler. One session runs at a time per process: the
// inference collaborator and the command pipeline are single-writer
// resources, enforced here rather than by convention.
type Loop struct {
	collab       inference.Collaborator
	disp         *command.Dispatcher
	store        Store
	cfg          config.AgentConfig
	log          *logging.Logger
	instructions string

	subs []Subscriber
	vars func() map[string]string

	// sleep and now are injectable for tests.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time

	mu      sync.Mutex
	session *Session
	history []exchange
}

// New creates a loop. Subscribers and dynamic variables are attached before
// the first RunSession; registration is not safe concurrently with a
// running session.
func New(collab inference.Collaborator, disp *command.Dispatcher, store Store, cfg config.AgentConfig, log *logging.Logger) *Loop {
	return &Loop{
		collab:       collab,
		disp:         disp,
		store:        store,
		cfg:          cfg,
		log:          log.WithPrefix("agent"),
		instructions: cfg.Instructions,
		sleep:        sleepCtx,
		now:          time.Now,
	}
}

// Subscribe attaches a progress subscriber.
func (l *Loop) Subscribe(sub Subscriber) {
	l.subs = append(l.subs, sub)
}

// SetDynamicVars attaches a provider of caller-supplied variables included
// in every proposal request.
func (l *Loop) SetDynamicVars(vars func() map[string]string) {
	l.vars = vars
}

// State returns the loop's current state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.session == nil {
		return StateIdle
	}
	return l.session.State
}

// Session returns a copy of the current session, or nil before the first run.
func (l *Loop) Session() *Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.session == nil {
		return nil
	}
	s := *l.session
	return &s
}

// RunSession runs one bounded session: up to MaxActions cycles, then back to
// idle. It returns an error only when a session is already running; every
// in-cycle failure is absorbed per the loop's error design.
func (l *Loop) RunSession(ctx context.Context) error {
	l.mu.Lock()
	if l.session != nil && l.session.State == StateRunning {
		id := l.session.ID
		l.mu.Unlock()
		return operr.SessionAlreadyRunning(id)
	}
	sess := NewSession(l.cfg.MaxActions, l.cfg.Cooldown)
	sess.State = StateRunning
	l.session = sess
	l.history = nil
	l.mu.Unlock()

	l.log.Info("session started",
		logging.SessionID(sess.ID),
		logging.F("max_actions", sess.MaxActions),
		logging.From(StateIdle.String()), logging.To(StateRunning.String()))

	l.bestEffort("set_active_status", func() error {
		return l.store.SetActiveStatus(ctx, true)
	})

	retriesLeft := l.cfg.ProposalRetries

session:
	for sess.BudgetRemaining() {
		switch l.runCycle(ctx, sess, &retriesLeft) {
		case cycleAbort:
			break session
		case cycleRetry:
			// A rejected proposal runs no command and consumes no budget.
			continue
		}

		l.mu.Lock()
		sess.Actions++
		remaining := sess.BudgetRemaining()
		l.mu.Unlock()

		if remaining && sess.Cooldown > 0 {
			l.setPhase(sess, PhaseCooldown)
			if err := l.sleep(ctx, sess.Cooldown); err != nil {
				l.log.Info("session cancelled during cooldown", logging.SessionID(sess.ID))
				break session
			}
		}
	}

	l.finishSession(ctx, sess)
	return nil
}

// cycleOutcome is what one cycle reports back to RunSession. Only an
// executed cycle counts against the action budget.
type cycleOutcome int

const (
	cycleExecuted cycleOutcome = iota
	cycleRetry
	cycleAbort
)

// runCycle executes one propose/validate/execute/persist/feedback sequence.
func (l *Loop) runCycle(ctx context.Context, sess *Session, retriesLeft *int) cycleOutcome {
	// RequestProposal is the loop's primary suspension point.
	l.setPhase(sess, PhaseRequestProposal)
	proposal, err := l.propose(ctx)
	if err != nil || proposal == nil {
		l.log.Warn("no proposal, ending session early",
			logging.SessionID(sess.ID), logging.Error(err))
		return cycleAbort
	}

	// Validate.
	l.setPhase(sess, PhaseValidate)
	if verr := proposal.Validate(); verr != nil {
		feedback := "Your last proposal was rejected: " + operr.GetUserMessage(verr) +
			". Reply with a JSON object containing non-empty thought, plan, and command fields."
		l.appendHistory(ctx, sess, "user", feedback)
		if *retriesLeft > 0 {
			*retriesLeft--
			l.log.Warn("invalid proposal, retrying",
				logging.SessionID(sess.ID), logging.F("retries_left", *retriesLeft))
			return cycleRetry
		}
		l.log.Warn("invalid proposal, ending session", logging.SessionID(sess.ID), logging.Error(verr))
		return cycleAbort
	}

	// Persist the provisional record before running anything, so a crashed
	// handler still leaves a trace of what was attempted.
	l.setPhase(sess, PhasePersist)
	recordID := ""
	l.bestEffort("create_action_record", func() error {
		id, err := l.store.CreateActionRecord(ctx, sess.ID, proposal.Thought, proposal.Plan, proposal.Command)
		recordID = id
		return err
	})

	// Execute through registry → binder → executor. Always yields a result.
	l.setPhase(sess, PhaseExecute)
	l.log.Info("executing",
		logging.SessionID(sess.ID), logging.Action(sess.Actions+1), logging.Command(proposal.Command))
	result := l.disp.Dispatch(ctx, proposal.Command)

	if recordID != "" {
		l.bestEffort("update_action_record", func() error {
			return l.store.UpdateActionRecord(ctx, recordID, result.Output)
		})
	}

	// Feedback: both texts go to the rolling context and the short-term
	// store, then out to subscribers.
	l.setPhase(sess, PhaseFeedback)
	assistantText := formatAssistantText(proposal.Thought, proposal.Plan, proposal.Command)
	userText := "Result:\n" + result.Output

	l.appendHistory(ctx, sess, "assistant", assistantText)
	l.appendHistory(ctx, sess, "user", userText)
	l.emitIteration(assistantText, userText)

	return cycleExecuted
}

// propose requests one proposal under the configured timeout.
func (l *Loop) propose(ctx context.Context) (*inference.Proposal, error) {
	if l.cfg.ProposalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.ProposalTimeout)
		defer cancel()
	}

	l.mu.Lock()
	contextText := l.buildContext(l.now())
	l.mu.Unlock()

	return l.collab.Propose(ctx, contextText)
}

// finishSession ends the session: emits the terminal event, clears the
// short-term store, flips the process status, and returns to idle.
func (l *Loop) finishSession(ctx context.Context, sess *Session) {
	l.mu.Lock()
	snapshot := l.historySnapshot()
	sess.State = StateIdle
	l.mu.Unlock()

	l.emitMaxActionsReached(snapshot)

	l.bestEffort("clear_short_term", func() error {
		return l.store.ClearShortTermHistory(ctx)
	})
	l.bestEffort("set_active_status", func() error {
		return l.store.SetActiveStatus(ctx, false)
	})

	l.log.Info("session finished",
		logging.SessionID(sess.ID),
		logging.Count(sess.Actions),
		logging.From(StateRunning.String()), logging.To(StateIdle.String()))
}

// appendHistory adds one exchange to the rolling context and mirrors it to
// the short-term store.
func (l *Loop) appendHistory(ctx context.Context, sess *Session, role, content string) {
	l.mu.Lock()
	l.history = append(l.history, exchange{Role: role, Content: content})
	l.mu.Unlock()

	l.bestEffort("append_short_term", func() error {
		return l.store.AppendShortTermMessage(ctx, role, content, sess.ID)
	})
}

// setPhase records the cycle phase transition.
func (l *Loop) setPhase(sess *Session, phase Phase) {
	l.log.Debug("phase", logging.SessionID(sess.ID), logging.To(phase.String()))
}

// bestEffort runs a store operation, logging failures without letting them
// touch loop state.
func (l *Loop) bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		l.log.Warn("store operation failed", logging.F("op", op), logging.Error(err))
	}
}

// sleepCtx waits for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
