package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the sequence viewer.
type KeyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Step    key.Binding
	Restart key.Binding
	Faster  key.Binding
	Slower  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Step: key.NewBinding(
			key.WithKeys("s", "right"),
			key.WithHelp("s", "step one term"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
	}
}

// helpEntries returns the footer help items in display order.
func (k KeyMap) helpEntries() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Restart, k.Faster, k.Slower, k.Quit}
}
