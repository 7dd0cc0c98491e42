package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"hanzi-cli/internal/model"
)

// DefaultPath is where the dictionary is read from when nothing else is configured.
const DefaultPath = "./word.json"

var (
	ErrNotFound  = errors.New("dictionary not found")
	ErrMalformed = errors.New("dictionary malformed")
)

// LoadError reports why a dictionary could not be loaded. It matches both its
// Kind (ErrNotFound or ErrMalformed) and the underlying cause with errors.Is.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Dictionary is the ordered, read-only list of entries loaded at startup.
type Dictionary struct {
	path    string
	entries []model.Entry
}

// Load reads a JSON array of entry objects from path. There is no partial
// load: any unreadable or malformed input fails the whole call.
func Load(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: err}
	}
	entries, err := decodeEntries(b)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrMalformed, Err: err}
	}
	return &Dictionary{path: path, entries: entries}, nil
}

// New builds a dictionary from already decoded entries (copied).
func New(entries []model.Entry) *Dictionary {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	return &Dictionary{entries: out}
}

func decodeEntries(b []byte) ([]model.Entry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	// "null" decodes into a nil slice without error.
	if raw == nil {
		return nil, errors.New("expected a top-level array")
	}

	entries := make([]model.Entry, 0, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || r[0] != '{' {
			return nil, fmt.Errorf("entry %d: expected an object", i)
		}
		var e model.Entry
		if err := json.Unmarshal(r, &e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Path is the file the dictionary was loaded from ("" for New).
func (d *Dictionary) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// At returns the entry at index i, or false when i is out of range.
func (d *Dictionary) At(i int) (model.Entry, bool) {
	if d == nil || i < 0 || i >= len(d.entries) {
		return model.Entry{}, false
	}
	return d.entries[i], true
}

// Entries returns a copy of all entries in file order.
func (d *Dictionary) Entries() []model.Entry {
	if d == nil {
		return nil
	}
	out := make([]model.Entry, len(d.entries))
	copy(out, d.entries)
	return out
}
