package tui

import (
	"hanzi-cli/internal/model"
	"hanzi-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
)

type entryItem struct {
	entry model.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Simplified }
func (i entryItem) Title() string       { return i.entry.Label() }

func entryItems(d *store.Dictionary) []list.Item {
	entries := d.Entries()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}
	return items
}

// newEntryList builds the list pane. The list only paginates and draws rows;
// the selection itself lives in appModel.cursor, so no keys are routed to it
// and all list chrome is hidden.
func newEntryList(items []list.Item, width, height int) list.Model {
	l := list.New(items, newEntryDelegate(false), width, height)
	l.Title = "目录"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}
