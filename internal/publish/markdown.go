package publish

import (
	"bytes"
	"fmt"
	"strings"

	"hanzi-cli/internal/model"
	"hanzi-cli/internal/store"

	"github.com/charmbracelet/glamour"
)

// RenderEntryMarkdown renders the entry at the 1-based list position n.
func RenderEntryMarkdown(d *store.Dictionary, n int) (string, error) {
	if d.Len() == 0 {
		return "", fmt.Errorf("dictionary is empty")
	}
	e, ok := d.At(n - 1)
	if !ok {
		return "", fmt.Errorf("entry %d out of range (1-%d)", n, d.Len())
	}
	return EntryMarkdown(e), nil
}

// EntryMarkdown formats a single entry. Empty fields are left out, except the
// headword which always produces a heading.
func EntryMarkdown(e model.Entry) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(e.Simplified)
	if trad := strings.TrimSpace(e.Traditional); trad != "" && trad != title {
		title += " (" + trad + ")"
	}
	writeLn("# " + title)
	writeLn("")

	meta := []struct{ label, value string }{
		{"简体", e.Simplified},
		{"繁体", e.Traditional},
		{"笔画", e.Strokes},
		{"拼音", e.Pinyin},
		{"字基", e.Radical},
	}
	wrote := false
	for _, m := range meta {
		v := strings.TrimSpace(m.value)
		if v == "" {
			continue
		}
		writeLn("- " + m.label + ": " + v)
		wrote = true
	}
	if wrote {
		writeLn("")
	}

	if v := strings.TrimSpace(e.Explanation); v != "" {
		writeLn("## 解释")
		writeLn("")
		writeLn(escapeBlock(v))
		writeLn("")
	}
	if v := strings.TrimSpace(e.Extra); v != "" {
		writeLn("## 更多")
		writeLn("")
		writeLn(escapeBlock(v))
		writeLn("")
	}
	return strings.TrimRight(buf.String(), "\n") + "\n"
}

// escapeBlock keeps free text as paragraphs. Leading indentation is dropped so
// nothing turns into a code block, and a leading block marker is escaped.
func escapeBlock(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		rest := strings.TrimLeft(ln, " \t")
		lines[i] = rest
		if rest == "" {
			continue
		}
		switch rest[0] {
		case '#', '>', '-', '+', '*', '`', '~', '|', '=', '_':
			lines[i] = "\\" + rest
			continue
		}
		// Ordered list markers: digits followed by "." or ")".
		j := 0
		for j < len(rest) && j < 9 && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j > 0 && j < len(rest) && (rest[j] == '.' || rest[j] == ')') {
			lines[i] = rest[:j] + "\\" + rest[j:]
		}
	}
	return strings.Join(lines, "\n")
}

// RenderTerminal renders markdown for a terminal of the given width. The
// style is fixed ("dark" or "light"); auto-detection can block on terminals
// that never answer background queries.
func RenderTerminal(md string, width int, style string) (string, error) {
	if width < 20 {
		width = 20
	}
	switch style {
	case "dark", "light", "notty", "ascii":
	default:
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
