package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept key.Binding
	Cancel key.Binding
	Copy   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Cancel: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	}
}
