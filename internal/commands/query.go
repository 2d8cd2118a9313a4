package commands

import (
	"context"

	"github.com/abdul-hamid-achik/operant/internal/command"
)

// Prompter answers a free-form question with plain text.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Query builds the "query" command: a one-shot question to the model,
// outside the agent's rolling session context.
func Query(p Prompter) *command.Definition {
	return &command.Definition{
		Name:        "query",
		Description: "Ask the model a one-shot question",
		Params: []command.ParameterSpec{
			{Name: "question", Description: "The question to ask", Required: true, Type: command.TypeString},
		},
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			question, _ := args.String("question")
			return p.Ask(ctx, question)
		}),
	}
}
