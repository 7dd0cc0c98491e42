package model

// Entry is one dictionary record. The JSON field names follow the word.json
// data set; every field is optional and defaults to "".
//
// Strokes is kept as text since some records carry annotations.
type Entry struct {
	Simplified  string `json:"word"`
	Traditional string `json:"oldword"`
	Strokes     string `json:"strokes"`
	Pinyin      string `json:"pinyin"`
	Radical     string `json:"radicals"`
	Explanation string `json:"explanation"`
	Extra       string `json:"more"`
}

// Label is the text shown for the entry in lists.
func (e Entry) Label() string { return e.Simplified }
