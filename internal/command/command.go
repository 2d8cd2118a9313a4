// Package command implements the generic command-dispatch engine: a registry
// of named command definitions, a pure token-to-argument binder, and a
// fault-bounded executor. Sub-command namespaces route through the same
// binder and executor against a nested registry.
package command

import (
	"context"
	"strings"
)

// ParamType is the type tag for a command parameter.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeNumber ParamType = "number"
)

// ParameterSpec describes one positional parameter of a command.
// Position is implied by slice order in the Definition.
type ParameterSpec struct {
	Name        string
	Description string
	Required    bool
	Type        ParamType

	// Default is documentation-only metadata. The binder never applies it;
	// it appears in help output and nothing else.
	Default string
}

// slurps reports whether this spec, when last in a definition, consumes all
// remaining tokens as a single space-joined value.
func (p ParameterSpec) slurps() bool {
	return p.Required && p.Type != TypeNumber
}

// Handler is the capability a command definition carries. Execute returns
// the command's output text or an error; the executor guarantees that
// neither errors nor panics escape past its own boundary.
type Handler interface {
	Execute(ctx context.Context, args Args) (string, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, args Args) (string, error)

func (f HandlerFunc) Execute(ctx context.Context, args Args) (string, error) {
	return f(ctx, args)
}

// Definition is an immutable named command: a description, an ordered
// parameter list, and a handler. A definition with a non-nil Sub is a
// category whose first argument selects a nested command; its own Params
// and Handler are ignored.
type Definition struct {
	Name        string
	Description string
	Params      []ParameterSpec
	Handler     Handler
	Sub         *Registry
}

// Signature renders the parameter list as "<required> [optional]".
func (d *Definition) Signature() string {
	if d.Sub != nil {
		return "<sub-command> [args...]"
	}
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if p.Required {
			parts = append(parts, "<"+p.Name+">")
		} else {
			parts = append(parts, "["+p.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

// Args is a bound argument record. It holds exactly the definition's
// parameter names as keys; parameters left unfilled map to nil. String
// parameters bind string values, number parameters bind float64.
type Args map[string]any

// String returns the named argument as a string. The second return is false
// when the argument is absent or not a string.
func (a Args) String(name string) (string, bool) {
	s, ok := a[name].(string)
	return s, ok
}

// Number returns the named argument as a float64. The second return is false
// when the argument is absent or not a number.
func (a Args) Number(name string) (float64, bool) {
	n, ok := a[name].(float64)
	return n, ok
}

// Has reports whether the named argument was filled with a value.
func (a Args) Has(name string) bool {
	v, ok := a[name]
	return ok && v != nil
}

// Result is the outcome of dispatching one command line. The executor always
// produces one; failures are carried in Output as human-readable text.
type Result struct {
	Output string
}

// Tokenize splits a raw command line into tokens on whitespace. Runs of
// whitespace collapse, so a slurping parameter re-joined with single spaces
// round-trips cleanly.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
