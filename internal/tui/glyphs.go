package tui

import (
	"strings"
	"sync"
)

// The selection marker defaults to a plain ">"; "unicode" swaps in "▸".

type glyphSet int

const (
	glyphSetASCII glyphSet = iota
	glyphSetUnicode
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetASCII
)

// applyGlyphPreference selects the glyph set by name. Unknown names are ignored.
func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii":
		setGlyphs(glyphSetASCII)
	case "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphMarker prefixes the highlighted list row. Both variants are one column wide.
func glyphMarker() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}
