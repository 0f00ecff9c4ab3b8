package bubbletea

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

var _ help.KeyMap = KeyMap{}

// KeyMap holds the key bindings of the demo host.
type KeyMap struct {
	Tap    key.Binding
	Menu   key.Binding
	Search key.Binding
	More   key.Binding
	Color  key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "tap")),
		Menu:   key.NewBinding(key.WithKeys(".", "m"), key.WithHelp(".", "menu")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		More:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "more")),
		Color:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Menu, k.Search, k.More, k.Color, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Menu},
		{k.Search, k.More},
		{k.Color, k.Theme, k.Quit},
	}
}
