package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdul-hamid-achik/operant/internal/agent"
)

// Run starts one agent session under a live watch view and blocks until the
// session ends and the user quits, or the view is dismissed mid-session.
func Run(ctx context.Context, loop *agent.Loop, modelName string, maxActions int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so a slow redraw cannot stall the loop's synchronous
	// subscriber notification.
	events := make(chan tea.Msg, 64)

	loop.Subscribe(agent.SubscriberFuncs{
		OnIteration: func(assistantText, userText string) {
			events <- iterationMsg{assistantText: assistantText, userText: userText}
		},
		OnMaxActionsReached: func(history []string) {
			events <- sessionDoneMsg{historyLen: len(history)}
		},
	})

	sessionFn := func() string {
		if s := loop.Session(); s != nil {
			return s.ID
		}
		return "pending"
	}

	go func() {
		if err := loop.RunSession(ctx); err != nil {
			events <- sessionErrMsg{err: err}
		}
	}()

	model := NewModel(sessionFn, modelName, maxActions, events)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}
