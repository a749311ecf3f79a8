package boundary

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(colorText)
	detailStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
