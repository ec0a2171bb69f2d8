package localdate

import (
	"time"
)

// DateTime is a date and a time of day without a zone.
// The zero value is 0001-01-01 00:00:00.
type DateTime struct {
	t time.Time // always UTC, no monotonic reading
}

// DateTimeOf combines a date and a time of day.
func DateTimeOf(d Date, t Time) DateTime {
	return d.At(t)
}

// DateTimeOfTime returns the wall-clock date and time of t in t's location.
func DateTimeOfTime(t time.Time) DateTime {
	return DateOfTime(t).At(TimeOfTime(t))
}

func (dt DateTime) Date() Date {
	return newDate(dt.t.Year(), dt.t.Month(), dt.t.Day())
}

func (dt DateTime) Time() Time {
	return TimeOfTime(dt.t)
}

func (dt DateTime) Year() int             { return dt.t.Year() }
func (dt DateTime) Month() time.Month     { return dt.t.Month() }
func (dt DateTime) Day() int              { return dt.t.Day() }
func (dt DateTime) Hour() int             { return dt.t.Hour() }
func (dt DateTime) Minute() int           { return dt.t.Minute() }
func (dt DateTime) Second() int           { return dt.t.Second() }
func (dt DateTime) Nanosecond() int       { return dt.t.Nanosecond() }
func (dt DateTime) Weekday() time.Weekday { return dt.t.Weekday() }

// PlusDuration returns dt moved by d.
func (dt DateTime) PlusDuration(d time.Duration) DateTime {
	return DateTime{t: dt.t.Add(d)}
}

// PlusMinutes returns dt moved by n minutes.
func (dt DateTime) PlusMinutes(n int64) DateTime {
	return DateTime{t: dt.t.Add(time.Duration(n) * time.Minute)}
}

// MinusMinutes returns dt moved back by n minutes.
func (dt DateTime) MinusMinutes(n int64) DateTime {
	return dt.PlusMinutes(-n)
}

// PlusDays returns dt moved by n days, keeping the time of day.
func (dt DateTime) PlusDays(n int) DateTime {
	return dt.Date().PlusDays(n).At(dt.Time())
}

// PlusMonths moves the date part like Date.PlusMonths.
func (dt DateTime) PlusMonths(n int) DateTime {
	return dt.Date().PlusMonths(n).At(dt.Time())
}

// PlusYears moves the date part like Date.PlusYears.
func (dt DateTime) PlusYears(n int) DateTime {
	return dt.Date().PlusYears(n).At(dt.Time())
}

// In interprets dt as a wall-clock reading in loc.
func (dt DateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), dt.Nanosecond(), loc)
}

func (dt DateTime) Before(o DateTime) bool { return dt.t.Before(o.t) }
func (dt DateTime) After(o DateTime) bool  { return dt.t.After(o.t) }
func (dt DateTime) Equal(o DateTime) bool  { return dt.t.Equal(o.t) }

// Compare returns -1, 0 or +1.
func (dt DateTime) Compare(o DateTime) int { return dt.t.Compare(o.t) }

// Format renders dt with pattern. An empty pattern means DateTimePattern.
func (dt DateTime) Format(pattern string) (string, error) {
	return formatValue("DateTime.Format", fields{date: dt.Date(), time: dt.Time(), hasDate: true, hasTime: true}, pattern, DateTimePattern)
}

// String renders dt with DateTimePattern.
func (dt DateTime) String() string {
	s, _ := dt.Format(DateTimePattern)
	return s
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTimeWith(string(b), DateTimePattern)
	if err != nil {
		return err
	}
	*dt = v
	return nil
}
