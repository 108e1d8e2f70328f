package cellfmt

import (
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar date without a time of day or zone.
// Its default cell text is YYYY-MM-DD.
type Date struct {
	civil.Date
}

// DateTime is a calendar date with a time of day and no zone.
// Its default cell text is the date and time joined by "T".
type DateTime struct {
	civil.DateTime
}

// TimeOfDay is a wall clock time without a date or zone.
// Its default cell text is HH:MM:SS, followed by nine fractional digits when
// the nanosecond field is set.
type TimeOfDay struct {
	civil.Time
}

// NewDate returns the date for year, month and day. Out-of-range fields are
// normalized the way time.Date does: February 30 becomes March 1 or 2.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// NewDateTime returns the date-time for the given fields, normalized like
// [NewDate].
func NewDateTime(year int, month time.Month, day, hour, minute, sec int) DateTime {
	return DateTimeOf(time.Date(year, month, day, hour, minute, sec, 0, time.UTC))
}

// NewTimeOfDay returns the time of day for the given fields. Overflow wraps
// around midnight: 25:00:00 is 01:00:00.
func NewTimeOfDay(hour, minute, sec, nsec int) TimeOfDay {
	return TimeOfDayOf(time.Date(0, time.January, 1, hour, minute, sec, nsec, time.UTC))
}

// DateOf returns the date in which t occurs, in t's location.
func DateOf(t time.Time) Date { return Date{civil.DateOf(t)} }

// DateTimeOf returns the date-time in which t occurs, in t's location.
func DateTimeOf(t time.Time) DateTime { return DateTime{civil.DateTimeOf(t)} }

// TimeOfDayOf returns the time of day at which t occurs, in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay { return TimeOfDay{civil.TimeOf(t)} }

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	return Date{d}, err
}

// ParseDateTime parses a date-time in the form YYYY-MM-DDTHH:MM:SS[.FFFFFFFFF].
func ParseDateTime(s string) (DateTime, error) {
	dt, err := civil.ParseDateTime(s)
	return DateTime{dt}, err
}

// ParseTimeOfDay parses a HH:MM:SS[.FFFFFFFFF] string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := civil.ParseTime(s)
	return TimeOfDay{t}, err
}

// RenderValue implements [CellValue].
func (d Date) RenderValue(opts FormatOptions[Date]) (string, error) {
	if p, ok := opts.Pattern(); ok {
		return formatPattern(d.In(time.UTC), p, dateSpecs)
	}
	return d.String(), nil
}

// RenderValue implements [CellValue].
func (dt DateTime) RenderValue(opts FormatOptions[DateTime]) (string, error) {
	if p, ok := opts.Pattern(); ok {
		return formatPattern(dt.In(time.UTC), p, dateTimeSpecs)
	}
	return dt.String(), nil
}

// RenderValue implements [CellValue].
func (t TimeOfDay) RenderValue(opts FormatOptions[TimeOfDay]) (string, error) {
	if p, ok := opts.Pattern(); ok {
		// The date part is never read; the specification set has no date verbs.
		clock := time.Date(0, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
		return formatPattern(clock, p, timeSpecs)
	}
	return t.String(), nil
}
