package boundary

import (
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

func captureStack() []byte {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	return buf[:n]
}

// safeInit runs the child's Init under recover.
func safeInit(child tea.Model, scope string) (cmd tea.Cmd, rerr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			cmd, rerr = nil, newRenderError(r, scope)
		}
	}()
	return child.Init(), nil
}

// safeUpdate delivers msg to the child under recover. On panic the child is
// returned unchanged so the caller keeps the last known-good instance.
func safeUpdate(child tea.Model, msg tea.Msg, scope string) (next tea.Model, cmd tea.Cmd, rerr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			next, cmd, rerr = child, nil, newRenderError(r, scope)
		}
	}()
	next, cmd = child.Update(msg)
	return next, cmd, nil
}

// safeView renders the child under recover.
func safeView(child tea.Model, scope string) (out string, rerr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			out, rerr = "", newRenderError(r, scope)
		}
	}()
	return child.View(), nil
}
