package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// entryDelegate renders one headword per row. The row at the list index is
// highlighted only while active, so an unset cursor shows no highlight even
// though the list itself always has an index.
type entryDelegate struct {
	active   bool
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newEntryDelegate(active bool) entryDelegate {
	return entryDelegate{
		active:   active,
		normal:   lipgloss.NewStyle(),
		selected: styleSelectedRow(),
	}
}

func (d entryDelegate) Height() int  { return 1 }
func (d entryDelegate) Spacing() int { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 1 {
		return
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	style := d.normal
	prefix := "  "
	if d.active && index == m.Index() {
		style = d.selected
		prefix = glyphMarker() + " "
	}

	line := prefix + txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}
