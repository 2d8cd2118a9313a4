package command

import (
	"fmt"
	"strconv"
	"strings"
)

// BindError reports why a token list could not be bound against a
// definition. It always names one concrete parameter (or, for sub-command
// routing, the unknown selector).
type BindError struct {
	Command string
	Param   string
	Reason  string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s", e.Command, e.Param, e.Reason)
}

// Render formats the binding failure as result text for the proposer.
func (e *BindError) Render() string {
	return fmt.Sprintf("Invalid arguments for %q: parameter %q %s.", e.Command, e.Param, e.Reason)
}

// Bind maps a token list onto a definition's parameter specs. It is a pure
// function: no side effects, total over its inputs. On success the returned
// Args holds exactly the definition's parameter names as keys; unfilled
// optionals map to nil. Declared defaults are documentation-only and are
// never applied here.
func Bind(def *Definition, tokens []string) (Args, *BindError) {
	args := make(Args, len(def.Params))
	cursor := 0

	for i, spec := range def.Params {
		last := i == len(def.Params)-1

		// The final required string parameter swallows everything left,
		// so free-text trailing arguments need no quoting syntax.
		if last && spec.slurps() {
			if cursor >= len(tokens) {
				return nil, &BindError{Command: def.Name, Param: spec.Name, Reason: "is required"}
			}
			args[spec.Name] = strings.Join(tokens[cursor:], " ")
			cursor = len(tokens)
			continue
		}

		if cursor >= len(tokens) {
			if spec.Required {
				return nil, &BindError{Command: def.Name, Param: spec.Name, Reason: "is required"}
			}
			args[spec.Name] = nil
			continue
		}

		token := tokens[cursor]
		cursor++

		if spec.Type == TypeNumber {
			n, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, &BindError{
					Command: def.Name,
					Param:   spec.Name,
					Reason:  fmt.Sprintf("expects a number, got %q", token),
				}
			}
			args[spec.Name] = n
		} else {
			args[spec.Name] = token
		}
	}

	return args, nil
}
