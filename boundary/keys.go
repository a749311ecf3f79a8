package boundary

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the boundary answers to while failed. Keys are
// swallowed in the Failed state so they never reach a broken child.
type KeyMap struct {
	TryAgain key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		TryAgain: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "try again"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R", "ctrl+r"),
			key.WithHelp("R", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
