package cellfmt

// CellValue is implemented by every type that can be rendered into a table
// cell. O is the type's own options type; each value type is paired with
// exactly one O, so the compiler rejects rendering a value with options meant
// for another type.
//
// RenderValue must accept the zero O and must not fail on it.
type CellValue[O any] interface {
	RenderValue(opts O) (string, error)
}

// Render converts v into cell text using opts. It is the entry point for code
// that is generic over the value type:
//
//	func cell[V cellfmt.CellValue[O], O any](v V, opts O) string {
//		s, _ := cellfmt.Render(v, opts)
//		return s
//	}
func Render[V CellValue[O], O any](v V, opts O) (string, error) {
	return v.RenderValue(opts)
}

// MustRender is like [Render] but panics if the conversion fails. It is meant
// for options built from pattern literals that are known to be valid.
func MustRender[V CellValue[O], O any](v V, opts O) string {
	s, err := v.RenderValue(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// RenderOr is like [Render] but returns fallback(err) when the conversion
// fails.
func RenderOr[V CellValue[O], O any](v V, opts O, fallback func(error) string) string {
	s, err := v.RenderValue(opts)
	if err != nil {
		return fallback(err)
	}
	return s
}

// FormatOptions holds the format pattern for a temporal value type V. The
// zero value has no pattern and renders V in its default form.
//
// The type parameter only ties the options to V; FormatOptions[Date] cannot be
// passed where FormatOptions[TimeOfDay] is expected.
type FormatOptions[V any] struct {
	// Format is a strftime pattern, e.g. "%Y-%m-%d". Nil means no pattern.
	// An empty string is a pattern and is passed to the formatter as is.
	Format *string
}

// WithFormat returns options for V carrying pattern. The pattern is not
// checked here; a malformed pattern fails at render time.
func WithFormat[V any](pattern string) FormatOptions[V] {
	return FormatOptions[V]{Format: &pattern}
}

// Pattern reports the pattern and whether one is set.
func (o FormatOptions[V]) Pattern() (string, bool) {
	if o.Format == nil {
		return "", false
	}
	return *o.Format, true
}
