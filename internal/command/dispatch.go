package command

import (
	"context"
	"fmt"

	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// Dispatcher ties the registry, binder, and executor together: it takes a
// raw command line and always produces a Result, whatever goes wrong inside.
type Dispatcher struct {
	reg  *Registry
	exec *Executor
	log  *logging.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(reg *Registry, exec *Executor, log *logging.Logger) *Dispatcher {
	return &Dispatcher{
		reg:  reg,
		exec: exec,
		log:  log.WithPrefix("dispatch"),
	}
}

// Registry returns the top-level registry.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// Dispatch tokenizes the line, resolves the top-level command, binds its
// arguments, and executes it. Unknown commands and binding failures come
// back as Results; nothing is raised.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) Result {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Result{Output: `Empty command. Use "help" to list available commands.`}
	}

	name := tokens[0]
	def, ok := d.reg.Lookup(name)
	if !ok {
		d.log.Debug("unknown command", logging.Command(name))
		return Result{Output: fmt.Sprintf("Unknown command %q. Use \"help\" to list available commands.", name)}
	}

	if def.Sub != nil {
		return d.dispatchSub(ctx, def, tokens[1:])
	}

	args, berr := Bind(def, tokens[1:])
	if berr != nil {
		d.log.Debug("binding failed", logging.Command(line), logging.Error(berr))
		return Result{Output: berr.Render()}
	}

	return d.exec.Execute(ctx, name, def, args)
}

// dispatchSub routes a category's remaining tokens: the first token selects
// a nested command (or "help"), and the rest bind against that nested
// definition through the same pure binder.
func (d *Dispatcher) dispatchSub(ctx context.Context, category *Definition, tokens []string) Result {
	if len(tokens) == 0 {
		// Bare category invocation reads as a help request.
		return Result{Output: category.Sub.HelpText()}
	}

	selector := tokens[0]
	rest := tokens[1:]

	if selector == "help" {
		return d.subHelp(category, rest)
	}

	nested, ok := category.Sub.Lookup(selector)
	if !ok {
		return Result{Output: fmt.Sprintf("Unknown sub-command %q for %q. Try \"%s help\".",
			selector, category.Name, category.Name)}
	}

	args, berr := Bind(nested, rest)
	if berr != nil {
		// Name the failure with the qualified command so the proposer can
		// correct itself.
		berr.Command = category.Name + " " + nested.Name
		return Result{Output: berr.Render()}
	}

	return d.exec.Execute(ctx, category.Name+" "+nested.Name, nested, args)
}

// subHelp renders help for a category: a summary of every nested command,
// or the full parameter help for one of them.
func (d *Dispatcher) subHelp(category *Definition, tokens []string) Result {
	if len(tokens) == 0 {
		return Result{Output: category.Sub.HelpText()}
	}

	name := tokens[0]
	nested, ok := category.Sub.Lookup(name)
	if !ok {
		return Result{Output: fmt.Sprintf("Unknown sub-command %q for %q. Try \"%s help\".",
			name, category.Name, category.Name)}
	}
	return Result{Output: ParameterHelp(nested)}
}
