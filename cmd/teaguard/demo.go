package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teaguard/widgets"
)

// demoModel is a deliberately fragile child: it panics on demand and after a
// counter threshold, to exercise the boundary interactively.
type demoModel struct {
	count     int
	threshold int
	width     int
	height    int
}

func newDemoModel() tea.Model {
	return demoModel{threshold: 5, width: 80, height: 24}
}

func (m demoModel) Init() tea.Cmd { return nil }

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p":
			panic("demo: requested panic")
		case " ", "space":
			m.count++
			if m.count >= m.threshold {
				panic(fmt.Sprintf("demo: counter overflowed at %d", m.count))
			}
			return m, nil
		}
	}
	return m, nil
}

func (m demoModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("teaguard demo")
	body := strings.Join([]string{
		title,
		"",
		widgets.PadRight(fmt.Sprintf("count: %d / panics at %d", m.count, m.threshold), 40),
		"",
		"space increment   p panic now   q quit",
	}, "\n")
	return widgets.Card{Title: "demo", Body: body}.Render(min(m.width, 60))
}
