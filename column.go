package cellfmt

import "fmt"

// Column describes one column of a sheet built from rows of type R: its
// header, its alignment and how a row is turned into the column's cell text.
//
// Columns are values; the builder methods return a modified copy.
type Column[R any] struct {
	header  string
	align   Alignment
	render  func(R) (string, error)
	plain   func(R) (string, error)
	onError func(R, error) (string, error)
}

// Field returns a column that renders get(row) with opts. The value type and
// its options type are checked against each other at compile time:
//
//	cellfmt.Field("Due", func(t Task) cellfmt.Date { return t.Due },
//		cellfmt.WithFormat[cellfmt.Date]("%d %b %Y"))
//
// Pass the zero options value (e.g. cellfmt.FormatOptions[cellfmt.Date]{})
// for the type's default rendering.
func Field[R any, V CellValue[O], O any](header string, get func(R) V, opts O) Column[R] {
	var zero O
	return Column[R]{
		header: header,
		render: func(row R) (string, error) { return Render(get(row), opts) },
		plain:  func(row R) (string, error) { return Render(get(row), zero) },
	}
}

// Text returns a column holding get(row) verbatim.
func Text[R any](header string, get func(R) string) Column[R] {
	return Column[R]{
		header: header,
		render: func(row R) (string, error) { return get(row), nil },
	}
}

// Stringer returns a column holding the String form of get(row).
func Stringer[R any, S fmt.Stringer](header string, get func(R) S) Column[R] {
	return Column[R]{
		header: header,
		render: func(row R) (string, error) { return get(row).String(), nil },
	}
}

// Header returns the column header.
func (c Column[R]) Header() string { return c.header }

// Alignment returns the column alignment.
func (c Column[R]) Alignment() Alignment { return c.align }

// Align returns a copy of c with alignment a.
func (c Column[R]) Align(a Alignment) Column[R] {
	c.align = a
	return c
}

// Fallback returns a copy of c whose failed cells hold fn(err) instead of
// failing the sheet.
func (c Column[R]) Fallback(fn func(err error) string) Column[R] {
	c.onError = func(_ R, err error) (string, error) { return fn(err), nil }
	return c
}

// OrMarker returns a copy of c whose failed cells hold marker.
func (c Column[R]) OrMarker(marker string) Column[R] {
	return c.Fallback(func(error) string { return marker })
}

// OrDefault returns a copy of c whose failed cells hold the value rendered
// with default options. Columns not built by [Field] never fail, so this only
// affects Field columns.
func (c Column[R]) OrDefault() Column[R] {
	if c.plain == nil {
		return c
	}
	plain := c.plain
	c.onError = func(row R, _ error) (string, error) { return plain(row) }
	return c
}

func (c Column[R]) cell(row R) (string, error) {
	s, err := c.render(row)
	if err == nil || c.onError == nil {
		return s, err
	}
	return c.onError(row, err)
}
