package cellfmt

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Sheet is a table of rendered cells, ready to be written in any [Format].
type Sheet struct {
	Title   string
	Header  []string
	Rows    [][]string
	Aligns  []Alignment
	Border  BorderStyle
	Caption string
}

// CellError reports a cell that could not be rendered. Row is zero-based.
type CellError struct {
	Row    int
	Column string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// Tabulate renders every cell of rows through cols. It stops at the first
// cell that fails and has no fallback, returning a *[CellError].
//
// The first row is checked for the optional interfaces [Titled], [Bordered],
// [Numbered] and [Captioned]. A sheet without rows has only a header.
func Tabulate[R any](cols []Column[R], rows []R) (*Sheet, error) {
	return TabulateSeq(cols, slices.Values(rows))
}

// TabulateSeq is like [Tabulate] but reads rows from an iterator.
func TabulateSeq[R any](cols []Column[R], seq iter.Seq[R]) (*Sheet, error) {
	sh := &Sheet{
		Header: make([]string, len(cols)),
		Aligns: make([]Alignment, len(cols)),
	}
	for i, col := range cols {
		sh.Header[i] = col.header
		sh.Aligns[i] = col.align
	}

	numHdr, numbered := "", false
	n := 0
	for row := range seq {
		if n == 0 {
			numHdr, numbered = sh.layout(row)
		}
		cells := make([]string, len(cols))
		for i, col := range cols {
			s, err := col.cell(row)
			if err != nil {
				return nil, &CellError{Row: n, Column: col.header, Err: err}
			}
			cells[i] = s
		}
		sh.Rows = append(sh.Rows, cells)
		n++
	}

	if numbered {
		sh.Header = append([]string{numHdr}, sh.Header...)
		sh.Aligns = append([]Alignment{AlignRight}, sh.Aligns...)
		for i, cells := range sh.Rows {
			sh.Rows[i] = append([]string{strconv.Itoa(i + 1)}, cells...)
		}
	}
	return sh, nil
}

func (s *Sheet) layout(row any) (numHdr string, numbered bool) {
	if t, ok := row.(Titled); ok {
		s.Title = t.Title()
	}
	if b, ok := row.(Bordered); ok {
		s.Border = b.Border()
	}
	if c, ok := row.(Captioned); ok {
		s.Caption = c.Caption()
	}
	if n, ok := row.(Numbered); ok {
		return n.NumberHeader(), true
	}
	return "", false
}

// Write renders s in format f and writes it to w.
func (s *Sheet) Write(w io.Writer, f Format) error {
	switch f {
	case Table:
		return writeTable(w, s)
	case Markdown:
		return writeMarkdown(w, s)
	case CSV:
		return writeCSV(w, s, ',')
	case TSV:
		return writeTSV(w, s)
	case HTML:
		return writeHTML(w, s)
	case JSON:
		return writeJSON(w, s)
	case JSONL:
		return writeJSONL(w, s)
	case YAML:
		return writeYAML(w, s)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, s)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders s in format f and returns the bytes.
func (s *Sheet) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write tabulates rows through cols and writes the sheet to w in format f.
func Write[R any](w io.Writer, f Format, cols []Column[R], rows ...R) error {
	sh, err := Tabulate(cols, rows)
	if err != nil {
		return err
	}
	return sh.Write(w, f)
}

// Marshal tabulates rows through cols and returns the sheet in format f.
func Marshal[R any](f Format, cols []Column[R], rows ...R) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, cols, rows...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// records pairs each row's cells with the header, in column order.
func (s *Sheet) records() []record {
	out := make([]record, len(s.Rows))
	for i, cells := range s.Rows {
		rec := make(record, len(s.Header))
		for j, h := range s.Header {
			v := ""
			if j < len(cells) {
				v = cells[j]
			}
			rec[j] = field{Key: h, Value: v}
		}
		out[i] = rec
	}
	return out
}

type field struct {
	Key   string
	Value string
}

// record is one sheet row keyed by header. Encoders keep the column order.
type record []field

func (r record) asMap() map[string]string {
	m := make(map[string]string, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}
