package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Draw  key.Binding
	Stand key.Binding
	Rules key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Draw: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "draw"),
		),
		Stand: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "stand"),
		),
		Rules: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "rules"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Draw, k.Stand, k.Rules, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
