// Package tui renders watch mode: a live read-only view of a running agent
// session built on Bubble Tea. It observes the loop through its subscriber
// interface and never feeds input back into it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for watch mode.
type Model struct {
	width  int
	height int
	ready  bool

	sessionFn  func() string
	modelName  string
	maxActions int

	actions int
	done    bool
	err     error

	// blocks is a pointer so appends survive model copies.
	blocks *[]string

	viewport viewport.Model
	spinner  spinner.Model

	// events delivers loop notifications from the subscriber goroutine.
	events chan tea.Msg
}

// NewModel creates a watch model fed by the given event channel. sessionFn
// resolves the session identifier lazily, since the session does not exist
// until the loop starts.
func NewModel(sessionFn func() string, modelName string, maxActions int, events chan tea.Msg) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	blocks := make([]string, 0, maxActions*2)
	return Model{
		sessionFn:  sessionFn,
		modelName:  modelName,
		maxActions: maxActions,
		blocks:     &blocks,
		spinner:    sp,
		events:     events,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// waitForEvent blocks on the subscriber channel and surfaces the next loop
// notification as a Bubble Tea message.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.events
		if !ok {
			return nil
		}
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 2 // header and footer rows
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderBlocks())

	case iterationMsg:
		m.actions++
		*m.blocks = append(*m.blocks, renderAssistant(msg.assistantText), renderResult(msg.userText))
		m.viewport.SetContent(m.renderBlocks())
		m.viewport.GotoBottom()
		return m, m.waitForEvent()

	case sessionDoneMsg:
		m.done = true
		*m.blocks = append(*m.blocks,
			doneStyle.Render(fmt.Sprintf("Session finished after %d actions.", m.actions)))
		m.viewport.SetContent(m.renderBlocks())
		m.viewport.GotoBottom()
		return m, nil

	case sessionErrMsg:
		m.done = true
		m.err = msg.err
		*m.blocks = append(*m.blocks, errStyle.Render("Session failed: "+msg.err.Error()))
		m.viewport.SetContent(m.renderBlocks())
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	title := "operant watch"
	session := headerSessionStyle.Render(fmt.Sprintf("session %s  model %s", shortID(m.sessionFn()), m.modelName))
	line := title + "  " + session
	return headerStyle.Width(m.width).Render(truncate(line, m.width))
}

func (m Model) footerView() string {
	var status string
	switch {
	case m.err != nil:
		status = errStyle.Render("failed")
	case m.done:
		status = doneStyle.Render("done")
	default:
		status = m.spinner.View() + " running"
	}
	line := fmt.Sprintf("%s  action %d/%d  q to quit", status, m.actions, m.maxActions)
	return footerStyle.Width(m.width).Render(truncate(line, m.width))
}

func (m Model) renderBlocks() string {
	return strings.Join(*m.blocks, "\n\n")
}

// renderAssistant styles the proposal's Thought/Plan/Command lines, giving
// the command line its own emphasis.
func renderAssistant(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Thought:"), strings.HasPrefix(line, "Plan:"):
			out = append(out, thoughtStyle.Render(line))
		case strings.HasPrefix(line, "Command:"):
			out = append(out, commandStyle.Render(line))
		default:
			out = append(out, assistantStyle.Render(line))
		}
	}
	return strings.Join(out, "\n")
}

func renderResult(text string) string {
	return resultStyle.Render(text)
}

// shortID returns the first uuid segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
