package boundary

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/teaguard/widgets"
)

// Fallback renders in place of a failed child. Implementations are
// presentational only; the boundary owns key handling and state.
type Fallback interface {
	View(ctx FallbackContext, width, height int) string
}

// FallbackContext carries everything a fallback may show or trigger: the
// stored error, the disclosure mode, and working reset/reload commands.
type FallbackContext struct {
	Err    *RenderError
	Mode   Mode
	Scope  string
	Reset  tea.Cmd
	Reload tea.Cmd
	Keys   KeyMap
}

// FallbackFunc adapts a plain function to the Fallback interface.
type FallbackFunc func(ctx FallbackContext, width, height int) string

func (f FallbackFunc) View(ctx FallbackContext, width, height int) string {
	return f(ctx, width, height)
}

// DefaultFallback is the stock fallback card: a static heading, the raw
// error text in development mode only, and the two recovery key hints.
// Production output is the development output minus the error fragment.
type DefaultFallback struct{}

func (DefaultFallback) View(ctx FallbackContext, width, height int) string {
	if width <= 0 {
		width = 60
	}
	inner := max(10, width-6)

	lines := []string{
		headingStyle.Render("Something went wrong"),
		"",
		bodyStyle.Render(ansi.Truncate("This view hit an unexpected error.", inner, "…")),
		bodyStyle.Render(ansi.Truncate("The rest of the app keeps running.", inner, "…")),
	}
	if ctx.Mode == ModeDevelopment && ctx.Err != nil {
		lines = append(lines, "", detailStyle.Render(ansi.Truncate(ctx.Err.Message(), inner, "…")))
	}
	lines = append(lines, "", renderKeyHints(ctx.Keys))

	card := widgets.Card{Body: strings.Join(lines, "\n")}.Render(width)
	if height > 0 {
		card = widgets.ClampHeight(card, height)
	}
	return card
}

func renderKeyHints(keys KeyMap) string {
	parts := make([]string, 0, 2)
	for _, b := range []key.Binding{keys.TryAgain, keys.Reload} {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
