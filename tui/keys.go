package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cancel    key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Navigate  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	MarkDone  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete char")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Navigate:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "navigate folder")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),
		MarkDone:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "mark done")),
	}
}
