package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects the console's key bindings for dispatch and for the
// help footer.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Accept       key.Binding
	Refresh      key.Binding
	ClearDecided key.Binding
	CopyEmail    key.Binding
	DarkMode     key.Binding
	Theme        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous paper"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next paper"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "accept"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ClearDecided: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear decided"),
		),
		CopyEmail: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy email"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Accept, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Accept},
		{k.Refresh, k.ClearDecided, k.CopyEmail},
		{k.DarkMode, k.Theme, k.Help, k.Quit},
	}
}
