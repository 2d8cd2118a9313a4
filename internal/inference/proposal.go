// Package inference defines the contract with the inference collaborator,
// the external producer of action proposals, and its Anthropic-backed
// implementation.
package inference

import (
	"context"

	operr "github.com/abdul-hamid-achik/operant/internal/errors"
)

// Proposal is the unit of intent for one action cycle: what the collaborator
// is thinking, the plan it is following, and the command line to run.
type Proposal struct {
	Thought string `json:"thought"`
	Plan    string `json:"plan"`
	Command string `json:"command"`
}

// Validate checks that every field is non-empty. It returns an error naming
// the first missing field.
func (p *Proposal) Validate() error {
	switch {
	case p == nil:
		return operr.ProposalInvalid("proposal")
	case p.Thought == "":
		return operr.ProposalInvalid("thought")
	case p.Plan == "":
		return operr.ProposalInvalid("plan")
	case p.Command == "":
		return operr.ProposalInvalid("command")
	}
	return nil
}

// Collaborator is the inference contract: one operation, propose the next
// action from assembled context text. A single request is in flight at a
// time; the action loop is the only caller during a session.
type Collaborator interface {
	Propose(ctx context.Context, contextText string) (*Proposal, error)
}
