package cellfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV(w io.Writer, s *Sheet, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(s.Header); err != nil {
		return err
	}
	for _, cells := range s.Rows {
		if err := cw.Write(cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTSV writes tab-separated lines without quoting. Tabs and newlines
// inside a cell are replaced by a space.
func writeTSV(w io.Writer, s *Sheet) error {
	if _, err := fmt.Fprintln(w, joinTSV(s.Header)); err != nil {
		return err
	}
	for _, cells := range s.Rows {
		if _, err := fmt.Fprintln(w, joinTSV(cells)); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func joinTSV(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = tsvEscaper.Replace(c)
	}
	return strings.Join(out, "\t")
}
