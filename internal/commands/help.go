package commands

import (
	"context"
	"fmt"

	"github.com/abdul-hamid-achik/operant/internal/command"
)

// Help builds the "help" command over the given registry: with no argument
// it lists every command, with one it prints that command's parameter help.
func Help(reg *command.Registry) *command.Definition {
	return &command.Definition{
		Name:        "help",
		Description: "List commands, or describe one command",
		Params: []command.ParameterSpec{
			{Name: "command", Description: "Command to describe", Type: command.TypeString},
		},
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			name, ok := args.String("command")
			if !ok {
				return reg.HelpText(), nil
			}
			def, found := reg.Lookup(name)
			if !found {
				return fmt.Sprintf("Unknown command %q. Use \"help\" to list available commands.", name), nil
			}
			return command.ParameterHelp(def), nil
		}),
	}
}
