package inference

import (
	"context"
	"strings"
	"testing"

	operr "github.com/abdul-hamid-achik/operant/internal/errors"
)

func TestProposalValidate(t *testing.T) {
	tests := []struct {
		name     string
		proposal *Proposal
		wantErr  string
	}{
		{"valid", &Proposal{Thought: "t", Plan: "p", Command: "status"}, ""},
		{"nil", nil, "proposal"},
		{"missing thought", &Proposal{Plan: "p", Command: "c"}, "thought"},
		{"missing plan", &Proposal{Thought: "t", Command: "c"}, "plan"},
		{"missing command", &Proposal{Thought: "t", Plan: "p"}, "command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.proposal.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(operr.GetUserMessage(err), tt.wantErr) {
				t.Errorf("expected %q named in error, got %q", tt.wantErr, operr.GetUserMessage(err))
			}
		})
	}
}

func TestParseProposal(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Proposal
		wantErr bool
	}{
		{
			name: "plain json",
			text: `{"thought": "t", "plan": "p", "command": "status"}`,
			want: Proposal{Thought: "t", Plan: "p", Command: "status"},
		},
		{
			name: "fenced",
			text: "```json\n{\"thought\": \"t\", \"plan\": \"p\", \"command\": \"notes list\"}\n```",
			want: Proposal{Thought: "t", Plan: "p", Command: "notes list"},
		},
		{
			name: "prose wrapped",
			text: `Here is my proposal: {"thought": "t", "plan": "p", "command": "sleep 5"} Hope that helps.`,
			want: Proposal{Thought: "t", Plan: "p", Command: "sleep 5"},
		},
		{
			name:    "no json",
			text:    "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			text:    `{"thought": }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProposal(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if operr.GetCategory(err) != operr.CategoryInference {
					t.Errorf("expected an inference-category error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestMockCollaborator(t *testing.T) {
	mock := NewMockCollaborator()

	p, err := mock.Propose(context.Background(), "some context")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Command != "status" {
		t.Errorf("expected default proposal, got %+v", p)
	}
	if mock.Calls() != 1 {
		t.Errorf("expected 1 recorded call, got %d", mock.Calls())
	}
	if mock.ProposeCalls[0] != "some context" {
		t.Errorf("expected context text recorded, got %q", mock.ProposeCalls[0])
	}

	mock.ProposeFunc = func(ctx context.Context, contextText string) (*Proposal, error) {
		return &Proposal{Thought: "custom", Plan: "custom", Command: "notes list"}, nil
	}
	p, _ = mock.Propose(context.Background(), "again")
	if p.Command != "notes list" {
		t.Errorf("expected ProposeFunc to take over, got %+v", p)
	}
}
