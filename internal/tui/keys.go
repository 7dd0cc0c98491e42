package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Next: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		// ctrl+c arrives as a key in raw mode.
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
