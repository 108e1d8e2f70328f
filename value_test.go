package cellfmt_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/cellfmt"
)

// --- A value type defined outside the package ---

type ticket string

type ticketOptions struct {
	Upper bool
}

func (t ticket) RenderValue(opts ticketOptions) (string, error) {
	if opts.Upper {
		return strings.ToUpper(string(t)), nil
	}
	return string(t), nil
}

// renderAll is generic over any cell value; it never inspects the type.
func renderAll[V cellfmt.CellValue[O], O any](opts O, values ...V) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		s, err := cellfmt.Render(v, opts)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func TestRenderGenericCaller(t *testing.T) {
	t.Parallel()
	dates, err := renderAll(cellfmt.WithFormat[cellfmt.Date]("%m/%d"),
		cellfmt.NewDate(2024, time.March, 7), cellfmt.NewDate(2024, time.December, 25))
	require.NoError(t, err)
	assert.Equal(t, []string{"03/07", "12/25"}, dates)

	tickets, err := renderAll(ticketOptions{Upper: true}, ticket("ops-1"), ticket("ops-2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"OPS-1", "OPS-2"}, tickets)

	_, err = renderAll(cellfmt.WithFormat[cellfmt.TimeOfDay]("%Y"), quarterTo)
	assert.ErrorIs(t, err, cellfmt.ErrInvalidPattern)
}

func TestFormatOptionsPattern(t *testing.T) {
	t.Parallel()
	p, ok := cellfmt.FormatOptions[cellfmt.Date]{}.Pattern()
	assert.False(t, ok)
	assert.Empty(t, p)

	p, ok = cellfmt.WithFormat[cellfmt.Date]("").Pattern()
	assert.True(t, ok)
	assert.Empty(t, p)

	p, ok = cellfmt.WithFormat[cellfmt.Date]("%F").Pattern()
	assert.True(t, ok)
	assert.Equal(t, "%F", p)
}

func TestEmptyPatternIsNotAbsent(t *testing.T) {
	t.Parallel()
	def, err := cellfmt.Render(march7At, cellfmt.FormatOptions[cellfmt.DateTime]{})
	require.NoError(t, err)
	empty, err := cellfmt.Render(march7At, cellfmt.WithFormat[cellfmt.DateTime](""))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07T13:45:30", def)
	assert.Empty(t, empty)
}

func TestMustRender(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2024/03/07", cellfmt.MustRender(march7, cellfmt.WithFormat[cellfmt.Date]("%Y/%m/%d")))

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		cellfmt.MustRender(march7, cellfmt.WithFormat[cellfmt.Date]("%Q"))
	}()
	err, ok := recovered.(error)
	require.True(t, ok, "panic value is %T", recovered)
	assert.ErrorIs(t, err, cellfmt.ErrInvalidPattern)
}

func TestRenderOr(t *testing.T) {
	t.Parallel()
	var seen error
	got := cellfmt.RenderOr(quarterTo, cellfmt.WithFormat[cellfmt.TimeOfDay]("%d"), func(err error) string {
		seen = err
		return "n/a"
	})
	assert.Equal(t, "n/a", got)
	assert.True(t, errors.Is(seen, cellfmt.ErrInvalidPattern))

	got = cellfmt.RenderOr(quarterTo, cellfmt.WithFormat[cellfmt.TimeOfDay]("%H"), func(error) string { return "n/a" })
	assert.Equal(t, "13", got)
}

func TestFloatRenderValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value   cellfmt.Float
		opts    cellfmt.NumberOptions
		want    string
		wantErr error
	}{
		"default":        {value: 3.14159, want: "3.14159"},
		"default whole":  {value: 42, want: "42"},
		"precision":      {value: 3.14159, opts: cellfmt.WithPrecision(2), want: "3.14"},
		"zero precision": {value: 2.5, opts: cellfmt.WithPrecision(0), want: "2"},
		"pad":            {value: 1, opts: cellfmt.WithPrecision(3), want: "1.000"},
		"negative":       {value: 1, opts: cellfmt.WithPrecision(-1), wantErr: cellfmt.ErrInvalidPrecision},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := cellfmt.Render(tc.value, tc.opts)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
