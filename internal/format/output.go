package format

import (
	"encoding/json"
	"fmt"
	"io"

	"hanzi-cli/internal/model"
)

// WriteEntries writes entries in the requested format.
//
// Supported formats:
// - json (default)
// - edn
func WriteEntries(w io.Writer, entries []model.Entry, format string, pretty bool) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	switch format {
	case "", "json":
		return WriteJSON(w, entries, pretty)
	case "edn":
		return WriteEDN(w, entries, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes v as a single JSON document followed by a newline. Entries
// keep the field names of the dictionary file, so the output can be loaded again.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	// Pinyin and CJK text should stay readable.
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
