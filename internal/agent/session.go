package agent

import (
	"time"

	"github.com/google/uuid"
)

// State is the loop's top-level state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Phase is the sub-state within one action cycle. Making the cycle's
// sequence explicit keeps early-exit paths and the budget boundary
// independently testable.
type Phase int

const (
	PhaseRequestProposal Phase = iota
	PhaseValidate
	PhaseExecute
	PhasePersist
	PhaseFeedback
	PhaseCooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseRequestProposal:
		return "request_proposal"
	case PhaseValidate:
		return "validate"
	case PhaseExecute:
		return "execute"
	case PhasePersist:
		return "persist"
	case PhaseFeedback:
		return "feedback"
	case PhaseCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Session is one bounded run of up to MaxActions cycles under a fresh
// identifier. The loop exclusively owns it; Actions only ever increases
// within a session and resets with the next one.
type Session struct {
	ID         string
	Actions    int
	MaxActions int
	Cooldown   time.Duration
	State      State
	StartedAt  time.Time
}

// NewSession creates a fresh idle session with a zero action count.
func NewSession(maxActions int, cooldown time.Duration) *Session {
	return &Session{
		ID:         uuid.NewString(),
		MaxActions: maxActions,
		Cooldown:   cooldown,
		State:      StateIdle,
		StartedAt:  time.Now(),
	}
}

// BudgetRemaining reports whether another action fits the budget.
func (s *Session) BudgetRemaining() bool {
	return s.Actions < s.MaxActions
}
