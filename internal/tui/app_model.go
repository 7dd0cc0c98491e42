package tui

import (
	"log/slog"
	"time"

	"hanzi-cli/internal/model"
	"hanzi-cli/internal/selection"
	"hanzi-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// redrawInterval bounds how long the loop waits for input before redrawing.
const redrawInterval = time.Second

// Used until the first tea.WindowSizeMsg arrives.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type redrawTickMsg struct{}

// appModel is the browser session. It owns the cursor; the dictionary is
// shared read-only.
type appModel struct {
	dict   *store.Dictionary
	cursor selection.Cursor
	keys   keyMap

	entriesList list.Model

	width  int
	height int

	quitting bool

	log *slog.Logger
}

func newAppModel(d *store.Dictionary, logger *slog.Logger) appModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := appModel{
		dict: d,
		keys: defaultKeyMap(),
		log:  logger,
	}
	lw, lh := listInnerSize(fallbackWidth, fallbackHeight)
	m.entriesList = newEntryList(entryItems(d), lw, lh)

	m.log.Debug("dictionary loaded", "path", d.Path(), "entries", d.Len())
	return m
}

func (m appModel) Init() tea.Cmd { return tickRedraw() }

func tickRedraw() tea.Cmd {
	return tea.Tick(redrawInterval, func(time.Time) tea.Msg { return redrawTickMsg{} })
}

// selectedEntry returns the entry under the cursor, or false when the cursor
// is unset or out of range.
func (m appModel) selectedEntry() (model.Entry, bool) {
	i, ok := m.cursor.Index()
	if !ok {
		return model.Entry{}, false
	}
	return m.dict.At(i)
}

// detailEntry is the entry shown in the detail panels. An unset cursor shows
// the first entry while the list stays unhighlighted.
func (m appModel) detailEntry() (model.Entry, bool) {
	if !m.cursor.IsSet() {
		return m.dict.At(0)
	}
	return m.selectedEntry()
}

func (m *appModel) setCursor(c selection.Cursor) {
	m.cursor = c
	i, ok := c.Index()
	m.entriesList.SetDelegate(newEntryDelegate(ok))
	if ok {
		m.entriesList.Select(i)
	}
}

func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height
	lw, lh := listInnerSize(width, height)
	m.entriesList.SetSize(lw, lh)
	if i, ok := m.cursor.Index(); ok {
		m.entriesList.Select(i)
	}
}

func (m appModel) size() (int, int) {
	if m.width <= 0 || m.height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return m.width, m.height
}
