package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the shapes TUI.
type KeyMap struct {
	Hello key.Binding
	Shape key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Hello: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "hello"),
	),
	Shape: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "shape"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hello, k.Shape, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
