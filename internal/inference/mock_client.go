package inference

import (
	"context"
	"sync"
)

// MockCollaborator implements Collaborator for testing.
type MockCollaborator struct {
	// ProposeFunc, when set, is called for every Propose.
	ProposeFunc func(ctx context.Context, contextText string) (*Proposal, error)

	mu sync.Mutex

	// ProposeCalls records the context text of every invocation (for test
	// assertions).
	ProposeCalls []string
}

// NewMockCollaborator creates a mock collaborator with a default canned
// proposal.
func NewMockCollaborator() *MockCollaborator {
	return &MockCollaborator{}
}

// Propose records the call and delegates to ProposeFunc, or returns a
// default proposal.
func (m *MockCollaborator) Propose(ctx context.Context, contextText string) (*Proposal, error) {
	m.mu.Lock()
	m.ProposeCalls = append(m.ProposeCalls, contextText)
	m.mu.Unlock()

	if m.ProposeFunc != nil {
		return m.ProposeFunc(ctx, contextText)
	}
	return &Proposal{
		Thought: "mock thought",
		Plan:    "mock plan",
		Command: "status",
	}, nil
}

// Calls returns the number of Propose invocations so far.
func (m *MockCollaborator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ProposeCalls)
}
