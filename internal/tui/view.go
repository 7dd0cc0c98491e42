package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	w, h := m.size()

	listW := min(listPaneWidth, w)
	left := m.viewEntryList(listW, h)
	right := m.viewDetail(w-listW, h)
	if right == "" {
		return normalizePane(left, w, h)
	}
	return normalizePane(lipgloss.JoinHorizontal(lipgloss.Top, left, right), w, h)
}

func (m appModel) viewEntryList(width, height int) string {
	body := ""
	// The list renders a "No items." placeholder when empty; an empty
	// dictionary shows an empty pane instead.
	if m.dict.Len() > 0 {
		body = m.entriesList.View()
	}
	return renderPanel("目录", body, width, height)
}

// viewDetail renders the panels for the selected entry. An empty dictionary or
// a cursor past the end draws every panel empty.
func (m appModel) viewDetail(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	e, _ := m.detailEntry()

	stripH := min(topStripHeight, height)
	explH := min(explanationHeight, height-stripH)
	notesH := height - stripH - explH

	cells := []struct{ title, body string }{
		{"简体", e.Simplified},
		{"繁体", e.Traditional},
		{"笔画", e.Strokes},
		{"拼音", e.Pinyin},
		{"字基", e.Radical},
	}
	widths := splitEven(width, topStripCells)
	strip := make([]string, 0, len(cells))
	for i, c := range cells {
		if widths[i] == 0 {
			continue
		}
		strip = append(strip, renderPanel(c.title, c.body, widths[i], stripH))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, strip...)}
	if explH > 0 {
		rows = append(rows, renderPanel("解释", e.Explanation, width, explH))
	}
	if notesH > 0 {
		rows = append(rows, renderPanel("更多", e.Extra, width, notesH))
	}
	return normalizePane(strings.Join(rows, "\n"), width, height)
}
