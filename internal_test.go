package cellfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWidthsWideChars(t *testing.T) {
	t.Parallel()
	// "你好" is two full-width characters, four columns.
	widths := computeWidths(2, []string{"a", "b"}, [][]string{{"你好", "x"}, {"abc"}})
	assert.Equal(t, []int{4, 1}, widths)
}

func TestComputeWidthsIgnoresExtraCells(t *testing.T) {
	t.Parallel()
	widths := computeWidths(1, []string{"ab"}, [][]string{{"a", "wider than all"}})
	assert.Equal(t, []int{2}, widths)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignCell("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", alignCell("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "abcdef", alignCell("abcdef", 3, AlignRight))
}

func TestExtendAligns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Alignment{AlignRight, AlignLeft, AlignLeft}, extendAligns([]Alignment{AlignRight}, 3))
	assert.Len(t, extendAligns([]Alignment{AlignRight, AlignRight, AlignRight}, 2), 2)
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 12, tableInnerWidth([]int{10}))
	assert.Equal(t, 10, tableInnerWidth([]int{2, 3}))
}

func TestJoinTSV(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b\tc d", joinTSV([]string{"a\tb", "c\nd"}))
}

func TestRecordMarshalJSONKeepsOrder(t *testing.T) {
	t.Parallel()
	rec := record{{Key: "z", Value: "1"}, {Key: "a", Value: `"q"`}}
	out, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":"1","a":"\"q\""}`, string(out))
}

func TestRecordsPadShortRows(t *testing.T) {
	t.Parallel()
	s := &Sheet{Header: []string{"a", "b"}, Rows: [][]string{{"1"}}}
	recs := s.records()
	require.Len(t, recs, 1)
	assert.Equal(t, map[string]string{"a": "1", "b": ""}, recs[0].asMap())
}

func TestSpecificationSets(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		verb                  byte
		date, dateTime, clock bool
	}{
		"year":                {verb: 'Y', date: true, dateTime: true},
		"hour":                {verb: 'H', dateTime: true, clock: true},
		"both":                {verb: 'c', dateTime: true},
		"zone":                {verb: 'Z'},
		"month":               {verb: 'b', date: true, dateTime: true},
		"minute":              {verb: 'M', dateTime: true, clock: true},
		"month number":        {verb: 'm', date: true, dateTime: true},
		"iso week year":       {verb: 'G', date: true, dateTime: true},
		"iso week year short": {verb: 'g', date: true, dateTime: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := dateSpecs.Lookup(tc.verb)
			assert.Equal(t, tc.date, err == nil, "date")
			_, err = dateTimeSpecs.Lookup(tc.verb)
			assert.Equal(t, tc.dateTime, err == nil, "date-time")
			_, err = timeSpecs.Lookup(tc.verb)
			assert.Equal(t, tc.clock, err == nil, "time")
		})
	}
}
