package agent

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// exchange is one rolling-context entry: either the assistant's structured
// proposal text or the user-role result text fed back to it.
type exchange struct {
	Role    string
	Content string
}

// buildContext assembles the full proposal request: standing instructions,
// the generated command help, the current timestamp, caller-supplied
// dynamic variables, and the rolling history of this session.
func (l *Loop) buildContext(now time.Time) string {
	var sb strings.Builder

	sb.WriteString(l.instructions)
	sb.WriteString("\n\n## Available commands\n\n")
	sb.WriteString(l.disp.Registry().HelpText())

	sb.WriteString("\nCurrent time: ")
	sb.WriteString(now.Format(time.RFC3339))
	sb.WriteString("\n")

	if l.vars != nil {
		vars := l.vars()
		if len(vars) > 0 {
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			sb.WriteString("\n")
			for _, k := range keys {
				sb.WriteString(fmt.Sprintf("%s: %s\n", k, vars[k]))
			}
		}
	}

	if len(l.history) > 0 {
		sb.WriteString("\n## History\n")
		for _, ex := range l.history {
			sb.WriteString("\n[")
			sb.WriteString(ex.Role)
			sb.WriteString("]\n")
			sb.WriteString(ex.Content)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nPropose the next action.")
	return sb.String()
}

// historySnapshot copies the rolling history as role-tagged lines.
func (l *Loop) historySnapshot() []string {
	out := make([]string, 0, len(l.history))
	for _, ex := range l.history {
		out = append(out, ex.Role+": "+ex.Content)
	}
	return out
}

// formatAssistantText renders a proposal as the structured text appended to
// the rolling context and persisted alongside the result.
func formatAssistantText(thought, plan, command string) string {
	return fmt.Sprintf("Thought: %s\nPlan: %s\nCommand: %s", thought, plan, command)
}
