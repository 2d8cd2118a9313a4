package commands

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/abdul-hamid-achik/operant/internal/command"
)

// maxSleep caps a single sleep so one bad proposal cannot stall a session
// past its cooldown-scale timings.
const maxSleep = 5 * time.Minute

// Sleep builds the "sleep" command, pausing the agent for a number of
// seconds. The wait is cancellable through the command context.
func Sleep() *command.Definition {
	return &command.Definition{
		Name:        "sleep",
		Description: "Pause for the given number of seconds",
		Params: []command.ParameterSpec{
			{Name: "seconds", Description: "How long to pause, capped at 300", Required: true, Type: command.TypeNumber},
		},
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			secs, _ := args.Number("seconds")
			if secs < 0 || math.IsNaN(secs) {
				return "", fmt.Errorf("seconds must be non-negative, got %v", secs)
			}
			d := time.Duration(secs * float64(time.Second))
			if d > maxSleep {
				d = maxSleep
			}

			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-timer.C:
			}
			return fmt.Sprintf("Slept for %s", d), nil
		}),
	}
}
