package cellfmt

import (
	"fmt"
	"io"
	"strings"
)

// Pipes in cells are escaped so they do not split the row.
var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown(w io.Writer, s *Sheet) error {
	header := escapeMarkdown(s.Header)
	rows := make([][]string, len(s.Rows))
	for i, cells := range s.Rows {
		rows[i] = escapeMarkdown(cells)
	}

	numCols := len(header)
	// Minimum 3 so the alignment markers fit.
	widths := computeWidths(numCols, header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := extendAligns(s.Aligns, numCols)

	if s.Title != "" {
		if _, err := fmt.Fprintf(w, "**%s**\n\n", s.Title); err != nil {
			return err
		}
	}
	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, cells := range rows {
		if err := writeMarkdownRow(w, cells, widths, aligns); err != nil {
			return err
		}
	}
	if s.Caption != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Caption); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
