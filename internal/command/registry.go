package command

import (
	"fmt"
	"strings"
	"sync"

	operr "github.com/abdul-hamid-achik/operant/internal/errors"
)

// Registry holds named command definitions. It is read-mostly after startup;
// registration normally happens once before the loop starts.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry(defs ...*Definition) *Registry {
	r := &Registry{
		defs: make(map[string]*Definition),
	}
	// Initial definitions come from the caller's own code; a name collision
	// there is a programming error, surfaced on first use instead.
	_ = r.Register(defs...)
	return r
}

// Register adds definitions keyed by name. Duplicate names are rejected:
// the first registration wins and an error reports the collision.
func (r *Registry) Register(defs ...*Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, def := range defs {
		if def.Name == "" {
			return fmt.Errorf("command definition has no name")
		}
		if _, exists := r.defs[def.Name]; exists {
			return operr.DuplicateCommand(def.Name)
		}
		r.defs[def.Name] = def
		r.order = append(r.order, def.Name)
	}
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// HelpText produces a deterministic, order-stable listing of every
// registered command: name, parameter signature, and description, padded so
// descriptions align. Absent registry mutation the output never changes.
func (r *Registry) HelpText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type row struct {
		head, desc string
	}
	rows := make([]row, 0, len(r.order))
	width := 0
	for _, name := range r.order {
		def := r.defs[name]
		head := def.Name
		if sig := def.Signature(); sig != "" {
			head += " " + sig
		}
		if len(head) > width {
			width = len(head)
		}
		rows = append(rows, row{head: head, desc: def.Description})
	}

	var sb strings.Builder
	for _, rw := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", width, rw.head, rw.desc))
	}
	return sb.String()
}

// ParameterHelp produces the full parameter listing for one definition:
// each parameter's name, type, required/optional flag, and declared default.
func ParameterHelp(def *Definition) string {
	var sb strings.Builder
	sb.WriteString(def.Name)
	if sig := def.Signature(); sig != "" {
		sb.WriteString(" ")
		sb.WriteString(sig)
	}
	sb.WriteString("\n  ")
	sb.WriteString(def.Description)
	sb.WriteString("\n")

	if len(def.Params) == 0 {
		sb.WriteString("  (no parameters)\n")
		return sb.String()
	}

	for _, p := range def.Params {
		typ := p.Type
		if typ == "" {
			typ = TypeString
		}
		req := "optional"
		if p.Required {
			req = "required"
		}
		sb.WriteString(fmt.Sprintf("  %s (%s, %s): %s", p.Name, typ, req, p.Description))
		if p.Default != "" {
			sb.WriteString(fmt.Sprintf(" (default: %s)", p.Default))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
