package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	primaryColor = lipgloss.Color("39")  // Cyan
	successColor = lipgloss.Color("82")  // Green
	errorColor   = lipgloss.Color("196") // Red
	dimColor     = lipgloss.Color("240") // Gray
	textColor    = lipgloss.Color("252") // Light gray
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	headerSessionStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	thoughtStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(textColor)

	commandStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(textColor)

	doneStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)

// truncate shortens a string to maxLen characters, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
