package agent

import (
	"testing"
)

func TestNewSession(t *testing.T) {
	s := NewSession(5, 0)
	if s.ID == "" {
		t.Error("expected a session id")
	}
	if s.Actions != 0 || s.MaxActions != 5 {
		t.Errorf("unexpected budget: %d/%d", s.Actions, s.MaxActions)
	}
	if s.State != StateIdle {
		t.Errorf("expected a fresh session to be idle, got %v", s.State)
	}

	other := NewSession(5, 0)
	if other.ID == s.ID {
		t.Error("expected distinct session ids")
	}
}

func TestBudgetRemaining(t *testing.T) {
	s := NewSession(2, 0)
	if !s.BudgetRemaining() {
		t.Error("expected budget at start")
	}
	s.Actions = 1
	if !s.BudgetRemaining() {
		t.Error("expected budget at 1/2")
	}
	s.Actions = 2
	if s.BudgetRemaining() {
		t.Error("expected no budget at 2/2")
	}
}

func TestStateAndPhaseStrings(t *testing.T) {
	if StateIdle.String() != "idle" || StateRunning.String() != "running" {
		t.Error("unexpected state strings")
	}

	phases := map[Phase]string{
		PhaseRequestProposal: "request_proposal",
		PhaseValidate:        "validate",
		PhaseExecute:         "execute",
		PhasePersist:         "persist",
		PhaseFeedback:        "feedback",
		PhaseCooldown:        "cooldown",
	}
	for phase, want := range phases {
		if phase.String() != want {
			t.Errorf("phase %d: expected %q, got %q", phase, want, phase.String())
		}
	}
}
