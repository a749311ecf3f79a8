package boundary

import tea "github.com/charmbracelet/bubbletea"

// FailureMsg delivers a render failure to the boundary. The boundary emits it
// itself when a wrapped command panics; hosts may also send it explicitly to
// route a failure they observed out-of-band into the same containment path.
type FailureMsg struct {
	Err *RenderError
}

// ResetMsg returns the boundary to normal rendering, keeping the child.
type ResetMsg struct{}

// ReloadMsg discards the child and rebuilds it from the configured factory.
type ReloadMsg struct{}

func FailureCmd(value any, scope string) tea.Cmd {
	return func() tea.Msg { return FailureMsg{Err: newRenderError(value, scope)} }
}

func ResetCmd() tea.Msg { return ResetMsg{} }

func ReloadCmd() tea.Msg { return ReloadMsg{} }
