package cellfmt

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, s *Sheet) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if s.Title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(s.Title)); err != nil {
			return err
		}
	}
	if len(s.Header) > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if err := writeHTMLRow(w, "th", s.Header, s.Aligns); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, cells := range s.Rows {
		if err := writeHTMLRow(w, "td", cells, s.Aligns); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "</table>"); err != nil {
		return err
	}
	if s.Caption != "" {
		if _, err := fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(s.Caption)); err != nil {
			return err
		}
	}
	return nil
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []Alignment) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, alignStyle(aligns, i), html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
