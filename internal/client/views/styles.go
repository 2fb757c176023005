package views

import "github.com/charmbracelet/lipgloss"

var (
	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4A017")).
			Width(10)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ade80")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderColor = lipgloss.Color("#3b3b4f")
)

// Alert formats an error for the terminal.
func Alert(msg string) string {
	return alertStyle.Render("! " + msg)
}

// Confirm formats a success message.
func Confirm(msg string) string {
	return confirmStyle.Render(msg)
}
