package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/operant/internal/command"
)

// StatusStore is the slice of the store the status command reads.
type StatusStore interface {
	ActiveStatus(ctx context.Context) (bool, error)
}

// Status builds the "status" command, reporting the process state the agent
// can observe about itself.
func Status(st StatusStore, started time.Time) *command.Definition {
	return &command.Definition{
		Name:        "status",
		Description: "Report the agent's current status",
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			active, err := st.ActiveStatus(ctx)
			if err != nil {
				return "", err
			}

			state := "inactive"
			if active {
				state = "active"
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "Status: %s\n", state)
			fmt.Fprintf(&sb, "Uptime: %s\n", time.Since(started).Round(time.Second))
			fmt.Fprintf(&sb, "Time: %s", time.Now().Format(time.RFC3339))
			return sb.String(), nil
		}),
	}
}
