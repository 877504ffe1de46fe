package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Narrower key.Binding
	Wider    key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Narrower: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "narrower")),
		Wider:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "wider")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "follow terminal")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
