package format

import "github.com/charmbracelet/lipgloss"

// Colors and styles for the text report. Chosen to match common terminal
// palettes; styling is skipped entirely when color is disabled.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
