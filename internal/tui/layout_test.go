package tui

import (
	"reflect"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestNormalizePane_PadsAndClips(t *testing.T) {
	got := normalizePane("ab\n爱爱爱爱", 5, 3)
	want := "ab   \n爱爱…\n     "
	if got != want {
		t.Fatalf("normalizePane:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderPanel_Geometry(t *testing.T) {
	out := xansi.Strip(renderPanel("解释", "to love", 14, 4))
	want := []string{
		"┌解释────────┐",
		"│to love     │",
		"│            │",
		"└────────────┘",
	}
	if got := strings.Split(out, "\n"); !reflect.DeepEqual(got, want) {
		t.Fatalf("renderPanel:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestRenderPanel_WrapsWideText(t *testing.T) {
	out := xansi.Strip(renderPanel("", "一二三四五", 6, 5))
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines; got %d", len(lines))
	}
	if lines[1] != "│一二│" || lines[2] != "│三四│" || lines[3] != "│五  │" {
		t.Fatalf("unexpected wrap: %#v", lines)
	}
}

func TestRenderPanel_Degenerate(t *testing.T) {
	if got := renderPanel("x", "y", 0, 3); got != "" {
		t.Fatalf("expected empty for zero width; got %q", got)
	}
	if got := renderPanel("x", "y", 1, 3); got != " \n \n " {
		t.Fatalf("expected blank column; got %q", got)
	}
	if got := xansi.Strip(renderPanel("标题", "y", 4, 2)); got != "┌标┐\n└──┘" {
		t.Fatalf("expected truncated title and no body; got %q", got)
	}
}

func TestSplitEven(t *testing.T) {
	cases := []struct {
		total, n int
		want     []int
	}{
		{72, 5, []int{14, 14, 14, 14, 16}},
		{5, 5, []int{1, 1, 1, 1, 1}},
		{3, 5, []int{0, 0, 0, 0, 3}},
		{-1, 2, []int{0, 0}},
	}
	for _, tc := range cases {
		if got := splitEven(tc.total, tc.n); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitEven(%d, %d): got %v want %v", tc.total, tc.n, got, tc.want)
		}
	}
	if got := splitEven(10, 0); got != nil {
		t.Fatalf("expected nil for n=0; got %v", got)
	}
}
