package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel() Model {
	events := make(chan tea.Msg, 8)
	m := NewModel(func() string { return "0a1b2c3d-0000-0000-0000-000000000000" }, "claude-test", 3, events)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model)
}

func TestModel_IterationAppendsBlocks(t *testing.T) {
	m := testModel()

	next, _ := m.Update(iterationMsg{
		assistantText: "Thought: t\nPlan: p\nCommand: status",
		userText:      "Result:\nStatus: active",
	})
	m = next.(Model)

	if m.actions != 1 {
		t.Errorf("expected 1 action, got %d", m.actions)
	}
	if len(*m.blocks) != 2 {
		t.Errorf("expected assistant and result blocks, got %d", len(*m.blocks))
	}

	view := m.View()
	if !strings.Contains(view, "action 1/3") {
		t.Errorf("expected action counter in footer, got:\n%s", view)
	}
}

func TestModel_SessionDone(t *testing.T) {
	m := testModel()

	next, _ := m.Update(sessionDoneMsg{historyLen: 6})
	m = next.(Model)

	if !m.done {
		t.Error("expected done state")
	}
	if !strings.Contains(m.View(), "done") {
		t.Errorf("expected done status in footer, got:\n%s", m.View())
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := testModel()

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("expected quit command for q")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("expected quit command for esc")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("expected quit command for ctrl+c")
	}
}

func TestRenderAssistant_HighlightsCommandLine(t *testing.T) {
	out := renderAssistant("Thought: t\nPlan: p\nCommand: notes list")
	if !strings.Contains(out, "notes list") {
		t.Errorf("expected command text preserved, got %q", out)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0a1b2c3d-0000-0000-0000-000000000000"); got != "0a1b2c3d" {
		t.Errorf("expected first segment, got %q", got)
	}
	if got := shortID("pending"); got != "pending" {
		t.Errorf("expected non-uuid passthrough, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("expected untouched string, got %q", got)
	}
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("expected truncation, got %q", got)
	}
}
