package tui

import "testing"

func TestGlyphs_FromPreference(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs by default; got %v", got)
	}
	if got := glyphMarker(); got != ">" {
		t.Fatalf("expected ascii marker; got %q", got)
	}

	applyGlyphPreference("UNICODE")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs; got %v", got)
	}
	if got := glyphMarker(); got != "▸" {
		t.Fatalf("expected unicode marker; got %q", got)
	}

	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}

	// Unknown values should be ignored (keep current).
	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	setGlyphs(glyphSetASCII)
}

func TestGlyphs_ZeroValueIsASCII(t *testing.T) {
	var gs glyphSet
	if gs != glyphSetASCII {
		t.Fatalf("expected the zero glyph set to be ascii; got %v", gs)
	}
}
