package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tab       key.Binding
	Add       key.Binding
	Increment key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Share     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "enter"),
			key.WithHelp("+", "increment"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summary"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) habitBindings() []key.Binding {
	return []key.Binding{k.Tab, k.Add, k.Increment, k.Edit, k.Delete, k.Quit}
}

func (k keyMap) moodBindings() []key.Binding {
	return []key.Binding{k.Tab, k.Add, k.Delete, k.Share, k.Quit}
}
