package cellfmt

import (
	"fmt"
	"strconv"
)

// Float is a floating point cell value.
type Float float64

// NumberOptions controls how a [Float] is rendered.
type NumberOptions struct {
	// Precision is the number of digits after the decimal point. Nil means
	// the shortest representation that round-trips.
	Precision *int
}

// WithPrecision returns number options with a fixed number of decimals.
func WithPrecision(digits int) NumberOptions {
	return NumberOptions{Precision: &digits}
}

// RenderValue implements [CellValue].
func (f Float) RenderValue(opts NumberOptions) (string, error) {
	if opts.Precision == nil {
		return strconv.FormatFloat(float64(f), 'f', -1, 64), nil
	}
	if *opts.Precision < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrecision, *opts.Precision)
	}
	return strconv.FormatFloat(float64(f), 'f', *opts.Precision, 64), nil
}
