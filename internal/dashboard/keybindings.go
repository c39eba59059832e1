package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Quit     key.Binding
	NextPane key.Binding
	PrevPane key.Binding
}

// DefaultKeyMap returns the dashboard's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous pane"),
		),
	}
}
