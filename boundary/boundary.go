package boundary

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/teaguard/report"
)

// Model wraps a child tea.Model and contains render failures raised anywhere
// in it. While Normal it is a pass-through; after a recovered panic it renders
// a fallback view until reset or reloaded.
//
// Invariant: lastErr is non-nil exactly when failed is true.
type Model struct {
	child    tea.Model
	fallback Fallback
	reporter report.Reporter
	mode     Mode
	scope    string
	rebuild  func() tea.Model
	keys     KeyMap

	failed  bool
	lastErr *RenderError

	width  int
	height int
}

// Option configures a boundary at construction time.
type Option func(*Model)

// WithFallback overrides the default fallback view.
func WithFallback(f Fallback) Option {
	return func(m *Model) {
		if f != nil {
			m.fallback = f
		}
	}
}

// WithReporter sets the diagnostic sink invoked once per contained failure.
func WithReporter(r report.Reporter) Option {
	return func(m *Model) { m.reporter = r }
}

// WithMode sets the disclosure mode passed to fallback views.
func WithMode(mode Mode) Option {
	return func(m *Model) { m.mode = mode }
}

// WithScope names the wrapped subtree in diagnostics.
func WithScope(scope string) Option {
	return func(m *Model) { m.scope = scope }
}

// WithReload installs a factory used by the reload action to rebuild the
// child from scratch, discarding whatever state the failure corrupted.
func WithReload(rebuild func() tea.Model) Option {
	return func(m *Model) { m.rebuild = rebuild }
}

// WithKeyMap overrides the recovery-action key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

func New(child tea.Model, opts ...Option) Model {
	m := Model{
		child:    child,
		fallback: DefaultFallback{},
		mode:     ModeProduction,
		keys:     DefaultKeyMap(),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Failed reports whether the boundary is currently showing a fallback.
func (m Model) Failed() bool { return m.failed }

// Err returns the stored failure, nil while Normal.
func (m Model) Err() *RenderError { return m.lastErr }

// Child returns the wrapped model as last updated.
func (m Model) Child() tea.Model { return m.child }

func (m Model) Init() tea.Cmd {
	cmd, rerr := safeInit(m.child, m.scope)
	if rerr != nil {
		return func() tea.Msg { return FailureMsg{Err: rerr} }
	}
	return m.wrapCmd(cmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.failed {
			return m, nil
		}
		return m.deliver(msg)
	case FailureMsg:
		if msg.Err == nil {
			return m, nil
		}
		return m.fail(msg.Err)
	case ResetMsg:
		return m.reset()
	case ReloadMsg:
		return m.reload()
	case tea.KeyMsg:
		if !m.failed {
			return m.deliver(msg)
		}
		switch {
		case key.Matches(msg, m.keys.TryAgain):
			return m.reset()
		case key.Matches(msg, m.keys.Reload):
			return m.reload()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		// The child is suspended; nothing else to route keys to.
		return m, nil
	}
	if m.failed {
		return m, nil
	}
	return m.deliver(msg)
}

func (m Model) View() string {
	if m.failed {
		return m.renderFallback(m.lastErr)
	}
	out, rerr := safeView(m.child, m.scope)
	if rerr != nil {
		// Render the fallback for this frame; the state commit happens on
		// the Update-side render probe.
		return m.renderFallback(rerr)
	}
	return out
}

// deliver routes msg to the child under recover, then probes the child's
// render path so a View panic lands in state before the next frame.
func (m Model) deliver(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, rerr := safeUpdate(m.child, msg, m.scope)
	if rerr != nil {
		return m.fail(rerr)
	}
	m.child = next
	if _, rerr := safeView(m.child, m.scope); rerr != nil {
		return m.fail(rerr)
	}
	return m, m.wrapCmd(cmd)
}

// fail is the pure state transition Normal→Failed. The returned command
// performs the single diagnostic emission after the state is committed.
func (m Model) fail(rerr *RenderError) (tea.Model, tea.Cmd) {
	m.failed = true
	m.lastErr = rerr
	return m, m.reportCmd(rerr)
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.failed = false
	m.lastErr = nil
	if m.width > 0 {
		// Re-sync the child with the current size; it slept through any
		// resizes that arrived while the fallback was up. A child that is
		// still panicking gets re-caught here.
		return m.deliver(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.rebuild == nil {
		return m.reset()
	}
	child, rerr := safeRebuild(m.rebuild, m.scope)
	if rerr != nil {
		return m.fail(rerr)
	}
	m.child = child
	m.failed = false
	m.lastErr = nil
	cmd, rerr := safeInit(m.child, m.scope)
	if rerr != nil {
		return m.fail(rerr)
	}
	return m, m.wrapCmd(cmd)
}

func (m Model) renderFallback(rerr *RenderError) string {
	ctx := FallbackContext{
		Err:    rerr,
		Mode:   m.mode,
		Scope:  m.scope,
		Reset:  ResetCmd,
		Reload: ReloadCmd,
		Keys:   m.keys,
	}
	return m.fallback.View(ctx, m.width, m.height)
}

// wrapCmd converts a panic inside a scheduled child command into a
// FailureMsg instead of letting it kill the program.
func (m Model) wrapCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	scope := m.scope
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = FailureMsg{Err: newRenderError(r, scope)}
			}
		}()
		return cmd()
	}
}

// reportCmd emits exactly one diagnostic per failure. A misbehaving reporter
// must never take the boundary down with it.
func (m Model) reportCmd(rerr *RenderError) tea.Cmd {
	if m.reporter == nil {
		return nil
	}
	reporter := m.reporter
	failure := report.Failure{
		ID:      report.NewID(),
		At:      rerr.At,
		Scope:   rerr.Scope,
		Mode:    m.mode.String(),
		Message: rerr.Message(),
		Stack:   string(rerr.Stack),
	}
	return func() tea.Msg {
		defer func() { _ = recover() }()
		_ = reporter.Report(context.Background(), failure)
		return nil
	}
}

func safeRebuild(rebuild func() tea.Model, scope string) (child tea.Model, rerr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			child, rerr = nil, newRenderError(r, scope)
		}
	}()
	return rebuild(), nil
}
