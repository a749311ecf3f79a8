package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card draws bordered chrome around already-styled body text at a fixed
// width, so inserting or removing body lines never reflows the frame.
type Card struct {
	Title string
	Body  string
}

func (c Card) Render(width int) string {
	if width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(max(1, width-2))
	body := c.Body
	if c.Title != "" {
		body = "[" + c.Title + "]\n" + body
	}
	return style.Render(body)
}

// ClampHeight truncates s to at most height lines.
func ClampHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}

// PadRight pads s with spaces to the given display width, ANSI-aware.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
