package cellfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidPattern    = errors.New("invalid format pattern")
	ErrInvalidPrecision  = errors.New("invalid precision")
)

// Format represents an output format for a [Sheet].
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, Markdown, CSV, TSV, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each sheet row through a Go
// text/template. The row is passed to the template as a map from column
// header to rendered cell text.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// --- Optional row interfaces ---
//
// A row type handed to [Tabulate] may implement any of these to shape the
// resulting sheet. They are checked once, on the first row.

// Titled renders a title above the table.
// Default: no title.
type Titled interface {
	Title() string
}

// Bordered controls the table border style.
// Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Numbered prepends a row number column.
// Default: no row numbers.
type Numbered interface {
	NumberHeader() string
}

// Captioned renders a line below the table.
// Default: no caption.
type Captioned interface {
	Caption() string
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)
