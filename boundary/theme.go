package boundary

import "github.com/charmbracelet/lipgloss"

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorBorder lipgloss.Color = "#585b70"
	colorAccent lipgloss.Color = "#89b4fa"
	colorError  lipgloss.Color = "#f38ba8"
)
