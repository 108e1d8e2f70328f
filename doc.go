// Package cellfmt renders typed values into table cells.
//
// A value type becomes renderable by implementing [CellValue] with its own
// options type. The options type is the only place a cell can be customized,
// and its zero value always means "render the default way". The package
// ships implementations for [Date], [DateTime], [TimeOfDay] and [Float].
//
// # Rendering a value
//
// [Render] converts a value with its options. The pairing of value and options
// types is checked by the compiler:
//
//	s, err := cellfmt.Render(cellfmt.NewDate(2024, time.March, 7),
//		cellfmt.WithFormat[cellfmt.Date]("%Y/%m/%d")) // "2024/03/07"
//
// Without a pattern each temporal type uses its own text form:
//
//   - [Date] — 2024-03-07
//   - [DateTime] — 2024-03-07T13:45:30
//   - [TimeOfDay] — 13:45:30, with nine fractional digits when set
//
// Patterns use strftime verbs. A verb the value cannot supply, such as %H on a
// [Date] or %Y on a [TimeOfDay], is rejected, and so are zone verbs. Failures
// wrap [ErrInvalidPattern]. [MustRender] panics instead, for patterns that
// are literals in the program; [RenderOr] substitutes a fallback.
//
// # Columns and sheets
//
// A [Column] turns one row of type R into one cell. [Field] builds a column
// from an accessor and the options for the accessor's value type, [Text] and
// [Stringer] build unformatted columns:
//
//	cols := []cellfmt.Column[Task]{
//		cellfmt.Text("Task", func(t Task) string { return t.Name }),
//		cellfmt.Field("Due", func(t Task) cellfmt.Date { return t.Due },
//			cellfmt.WithFormat[cellfmt.Date]("%d %b %Y")),
//	}
//	cellfmt.Write(os.Stdout, cellfmt.Table, cols, tasks...)
//
// [Tabulate] renders all cells into a [Sheet]. A failing cell stops it with a
// [*CellError] unless the column has a fallback ([Column.OrDefault],
// [Column.OrMarker], [Column.Fallback]).
//
// The row type may implement [Titled], [Bordered], [Numbered] and [Captioned]
// to shape the sheet.
//
// # Formats
//
// A sheet is written with [Sheet.Write] as Table, Markdown, CSV, TSV, HTML,
// JSON, JSONL or YAML, or through a Go template built with [GoTemplate]. Use
// [ParseFormat] to read a format from a flag.
//
// # Errors
//
//   - [ErrInvalidPattern] — pattern rejected by the formatter
//   - [ErrInvalidPrecision] — negative [Float] precision
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
package cellfmt
