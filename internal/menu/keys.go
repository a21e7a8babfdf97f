package menu

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	AddMap    key.Binding
	AddBlock  key.Binding
	Delete    key.Binding
	Toggle    key.Binding
	StartStop key.Binding
	Save      key.Binding
	Reload    key.Binding
	Back      key.Binding
	Next      key.Binding
	Submit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		AddMap:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add mapping")),
		AddBlock:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "block key")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Toggle:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle")),
		StartStop: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
		Save:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		Reload:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "reload")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	}
}
