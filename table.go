package cellfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

func writeTable(w io.Writer, s *Sheet) error {
	numCols := len(s.Header)
	for _, cells := range s.Rows {
		numCols = max(numCols, len(cells))
	}
	if numCols == 0 {
		return nil
	}
	widths := computeWidths(numCols, s.Header, s.Rows)
	aligns := extendAligns(s.Aligns, numCols)

	var err error
	if s.Border == BorderNone {
		err = renderPlainTable(w, s, widths, aligns)
	} else {
		err = renderBorderedTable(w, s, widths, aligns)
	}
	if err != nil {
		return err
	}
	if s.Caption != "" {
		_, err = fmt.Fprintln(w, s.Caption)
	}
	return err
}

// computeWidths returns the display width of the widest cell per column.
func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			if i < numCols {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	measure(header)
	for _, cells := range rows {
		measure(cells)
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// padRow aligns each cell to its column width. Missing cells are blank.
func padRow(cells []string, widths []int, aligns []Alignment) []string {
	out := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		out[i] = alignCell(cell, width, aligns[i])
	}
	return out
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, s *Sheet, widths []int, aligns []Alignment) error {
	if s.Title != "" {
		if _, err := fmt.Fprintln(w, s.Title); err != nil {
			return err
		}
	}
	if len(s.Header) > 0 {
		if err := writePlainRow(w, s.Header, widths, aligns); err != nil {
			return err
		}
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, cells := range s.Rows {
		if err := writePlainRow(w, cells, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	line := strings.TrimRight(strings.Join(padRow(cells, widths, aligns), "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, s *Sheet, widths []int, aligns []Alignment) error {
	bc := borderSets[s.Border]

	if s.Title != "" {
		// Full-width top border, then the title, then the column split.
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, alignCell(s.Title, inner, AlignCenter), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(s.Header) > 0 {
		if err := drawBorderedRow(w, s.Header, widths, aligns, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, cells := range s.Rows {
		if err := drawBorderedRow(w, cells, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth is the width between the outer borders: each cell plus one
// space of padding per side, and one separator between cells.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	return n + len(widths) - 1
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = strings.Repeat(fill, width+2)
	}
	_, err := fmt.Fprintln(w, left+strings.Join(segs, mid)+right)
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	padded := padRow(cells, widths, aligns)
	_, err := fmt.Fprintf(w, "%s %s %s\n", vert, strings.Join(padded, " "+vert+" "), vert)
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
