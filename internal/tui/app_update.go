package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case redrawTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickRedraw()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	before := m.cursor
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.log.Debug("quit", "key", msg.String())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.setCursor(m.cursor.Prev(m.dict.Len()))
	case key.Matches(msg, m.keys.Next):
		m.setCursor(m.cursor.Next(m.dict.Len()))
	default:
		return m, nil
	}

	from, hadFrom := before.Index()
	to, hasTo := m.cursor.Index()
	m.log.Debug("move",
		"key", msg.String(),
		"from", cursorAttr(from, hadFrom),
		"to", cursorAttr(to, hasTo),
	)
	return m, nil
}

func cursorAttr(i int, ok bool) any {
	if !ok {
		return "unset"
	}
	return i
}
