package tui

import (
	"strings"
	"testing"

	"hanzi-cli/internal/model"
	"hanzi-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func viewLines(t *testing.T, m appModel) []string {
	t.Helper()
	return strings.Split(xansi.Strip(m.View()), "\n")
}

func assertFrame(t *testing.T, lines []string, width, height int) {
	t.Helper()
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != width {
			t.Fatalf("line %d: expected width %d, got %d (%q)", i, width, w, ln)
		}
	}
}

func TestView_ShowsSelectedEntry(t *testing.T) {
	setGlyphs(glyphSetASCII)

	d := store.New([]model.Entry{{
		Simplified:  "爱",
		Traditional: "愛",
		Strokes:     "10",
		Pinyin:      "ài",
		Radical:     "心",
		Explanation: "to love",
		Extra:       "see also 愛情",
	}})
	m := newAppModel(d, nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 20}, keyDown)

	lines := viewLines(t, m)
	assertFrame(t, lines, 80, 20)

	// Top strip: titles in the first row, values in the second.
	for _, title := range []string{"目录", "简体", "繁体", "笔画", "拼音", "字基"} {
		if !strings.Contains(lines[0], title) {
			t.Fatalf("expected title %q in top row; got %q", title, lines[0])
		}
	}
	for _, v := range []string{"> 爱", "愛", "10", "ài", "心"} {
		if !strings.Contains(lines[1], v) {
			t.Fatalf("expected %q in second row; got %q", v, lines[1])
		}
	}
	if !strings.Contains(lines[3], "解释") || !strings.Contains(lines[4], "to love") {
		t.Fatalf("expected explanation panel; got %q / %q", lines[3], lines[4])
	}
	if !strings.Contains(lines[7], "更多") || !strings.Contains(lines[8], "see also 愛情") {
		t.Fatalf("expected notes panel; got %q / %q", lines[7], lines[8])
	}
}

func TestView_UnsetCursorShowsFirstEntryWithoutHighlight(t *testing.T) {
	setGlyphs(glyphSetASCII)

	m := newAppModel(threeEntryDict(), nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 16})

	lines := viewLines(t, m)
	assertFrame(t, lines, 60, 16)
	out := strings.Join(lines, "\n")
	if strings.Contains(out, ">") {
		t.Fatalf("expected no marker without a selection:\n%s", out)
	}
	for _, w := range []string{"一", "二", "三"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected list to contain %q:\n%s", w, out)
		}
	}
	if !strings.Contains(lines[1], "yī") {
		t.Fatalf("expected first entry in the top strip; got %q", lines[1])
	}
	if strings.Contains(out, "èr") || strings.Contains(out, "sān") {
		t.Fatalf("expected only the first entry in the detail panels:\n%s", out)
	}
}

func TestView_HighlightFollowsCursor(t *testing.T) {
	setGlyphs(glyphSetASCII)

	m := newAppModel(threeEntryDict(), nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 16}, keyUp, keyUp)

	lines := viewLines(t, m)
	// Rows 1..3 hold 一 二 三; 三 is selected after wrapping.
	if !strings.Contains(lines[3], "> 三") {
		t.Fatalf("expected 三 highlighted; got %q", lines[3])
	}
	if strings.Contains(lines[1], ">") || strings.Contains(lines[2], ">") {
		t.Fatalf("expected only one highlighted row; got %q %q", lines[1], lines[2])
	}
	if !strings.Contains(lines[1], "sān") {
		t.Fatalf("expected pinyin of 三 in the top strip; got %q", lines[1])
	}
}

func TestView_EmptyDictionary(t *testing.T) {
	m := newAppModel(store.New(nil), nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 50, Height: 12}, keyDown)

	lines := viewLines(t, m)
	assertFrame(t, lines, 50, 12)
	out := strings.Join(lines, "\n")
	if strings.Contains(out, "No items") {
		t.Fatalf("expected empty list pane:\n%s", out)
	}
	if !strings.Contains(lines[0], "目录") || !strings.Contains(lines[0], "简体") {
		t.Fatalf("expected panel titles; got %q", lines[0])
	}
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := newAppModel(threeEntryDict(), nil)
	assertFrame(t, viewLines(t, m), fallbackWidth, fallbackHeight)
}

func TestView_TinyTerminalDoesNotPanic(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 2}, {8, 5}, {10, 3}, {20, 6}} {
		m := newAppModel(threeEntryDict(), nil)
		m, _ = press(t, m, tea.WindowSizeMsg{Width: sz[0], Height: sz[1]}, keyDown)
		assertFrame(t, viewLines(t, m), sz[0], sz[1])
	}
}

func TestView_LongExplanationIsClipped(t *testing.T) {
	long := strings.Repeat("爱", 200)
	m := newAppModel(store.New([]model.Entry{{Simplified: "爱", Explanation: long, Extra: long}}), nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 14}, keyDown)

	assertFrame(t, viewLines(t, m), 40, 14)
}
