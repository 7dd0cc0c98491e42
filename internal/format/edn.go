package format

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"hanzi-cli/internal/model"
)

// entryFields lists the EDN keys of an entry in dictionary file order.
var entryFields = []struct {
	key string
	get func(model.Entry) string
}{
	{"word", func(e model.Entry) string { return e.Simplified }},
	{"oldword", func(e model.Entry) string { return e.Traditional }},
	{"strokes", func(e model.Entry) string { return e.Strokes }},
	{"pinyin", func(e model.Entry) string { return e.Pinyin }},
	{"radicals", func(e model.Entry) string { return e.Radical }},
	{"explanation", func(e model.Entry) string { return e.Explanation }},
	{"more", func(e model.Entry) string { return e.Extra }},
}

// WriteEDN writes entries as an EDN vector of maps with keyword keys.
func WriteEDN(w io.Writer, entries []model.Entry, pretty bool) error {
	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.writeEntries(&buf, entries)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) sep(buf *bytes.Buffer, level int) {
	if e.pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*e.indent))
		return
	}
	buf.WriteByte(' ')
}

func (e ednEncoder) writeEntries(buf *bytes.Buffer, entries []model.Entry) {
	buf.WriteByte('[')
	if len(entries) == 0 {
		buf.WriteByte(']')
		return
	}
	for i, en := range entries {
		if i == 0 {
			if e.pretty {
				buf.WriteByte('\n')
				buf.WriteString(strings.Repeat(" ", e.indent))
			}
		} else {
			e.sep(buf, 1)
		}
		e.writeEntry(buf, en, 1)
	}
	if e.pretty {
		buf.WriteByte('\n')
	}
	buf.WriteByte(']')
}

func (e ednEncoder) writeEntry(buf *bytes.Buffer, en model.Entry, level int) {
	buf.WriteByte('{')
	for i, f := range entryFields {
		if i > 0 {
			e.sep(buf, level+1)
		}
		buf.WriteByte(':')
		buf.WriteString(f.key)
		buf.WriteByte(' ')
		buf.WriteString(ednString(f.get(en)))
	}
	buf.WriteByte('}')
}

// ednString quotes s as an EDN string. EDN only knows the escapes \" \\ \n
// \t \r, so the remaining characters are written through unchanged.
func ednString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				b.WriteString(`\u` + leftPad(strconv.FormatInt(int64(r), 16), 4))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func leftPad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
