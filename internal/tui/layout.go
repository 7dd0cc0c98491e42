package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	// listPaneWidth includes the borders: a marker, a space and a two-column headword.
	listPaneWidth     = 8
	topStripHeight    = 3
	explanationHeight = 4
	topStripCells     = 5
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall. This keeps lipgloss.JoinHorizontal stable when panes hold wide CJK text.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		w := xansi.StringWidth(ln)

		if w > width {
			if width <= 0 {
				ln = ""
			} else if width == 1 {
				ln = xansi.Cut(ln, 0, 1)
			} else {
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln = ln + strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

// renderPanel draws a bordered box of exactly width x height cells with title
// set into the top border. body is wrapped to the inner width and clipped.
func renderPanel(title, body string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 2 || height < 2 {
		return normalizePane("", width, height)
	}

	b := lipgloss.NormalBorder()
	bs := stylePanelBorder()
	innerW, innerH := width-2, height-2

	t := xansi.Truncate(title, innerW, "")
	top := bs.Render(b.TopLeft) +
		stylePanelTitle().Render(t) +
		bs.Render(strings.Repeat(b.Top, innerW-xansi.StringWidth(t))+b.TopRight)

	out := make([]string, 0, height)
	out = append(out, top)
	if innerH > 0 {
		content := ""
		if innerW > 0 {
			content = xansi.Wrap(cleanPanelText(body), innerW, "")
		}
		left, right := bs.Render(b.Left), bs.Render(b.Right)
		for _, ln := range strings.Split(normalizePane(content, innerW, innerH), "\n") {
			out = append(out, left+ln+right)
		}
	}
	out = append(out, bs.Render(b.BottomLeft+strings.Repeat(b.Bottom, innerW)+b.BottomRight))
	return strings.Join(out, "\n")
}

func cleanPanelText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", "    ")
}

// splitEven divides total into n widths; the last one absorbs the remainder.
func splitEven(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
	}
	out[n-1] += total % n
	return out
}

// listInnerSize is the area available to the entry list inside its border.
func listInnerSize(width, height int) (int, int) {
	w := min(listPaneWidth, width) - 2
	h := height - 2
	return max(w, 0), max(h, 0)
}
