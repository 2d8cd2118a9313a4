package command

import (
	"context"
	"fmt"
	"time"

	operr "github.com/abdul-hamid-achik/operant/internal/errors"
	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// Executor invokes command handlers inside a fault boundary. Execute is a
// total function: handler errors and panics are caught and rendered as
// result text, never raised past the executor.
type Executor struct {
	log *logging.Logger

	// Timeout bounds a single handler invocation by cancelling its context.
	// Cancellation is cooperative: a handler that ignores ctx still blocks
	// Execute past the bound. Zero means unbounded.
	Timeout time.Duration
}

// NewExecutor creates an executor logging through the given logger.
func NewExecutor(log *logging.Logger) *Executor {
	return &Executor{log: log.WithPrefix("executor")}
}

// Execute runs the definition's handler with the bound arguments. The name
// may be qualified (e.g. "notes add") so nested failures are annotated with
// the nested command's name.
func (e *Executor) Execute(ctx context.Context, name string, def *Definition, args Args) (res Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("handler panicked", logging.Command(name), logging.F("panic", fmt.Sprint(r)))
			res = Result{Output: fmt.Sprintf("Command %q failed: internal error: %v", name, r)}
		}
	}()

	if def.Handler == nil {
		return Result{Output: fmt.Sprintf("Command %q has no handler.", name)}
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	output, err := def.Handler.Execute(ctx, args)
	if err != nil {
		e.log.Error("handler failed", logging.Command(name),
			logging.Error(operr.HandlerFailed(name, err)), logging.DurationSince(start))
		return Result{Output: fmt.Sprintf("Command %q failed: %s", name, operr.GetUserMessage(err))}
	}

	e.log.Debug("handler completed", logging.Command(name), logging.DurationSince(start))
	return Result{Output: output}
}
