package localdate

import (
	"time"
)

const (
	secondsPerDay = 24 * 60 * 60
	nanosPerDay   = int64(secondsPerDay) * int64(time.Second)
)

// Date is a calendar date without a time of day or zone.
//
// The zero value is 0001-01-01. Dates are comparable with == and ordered with
// Before, After and Compare.
type Date struct {
	t time.Time // always midnight UTC
}

// DateOf returns the date for year, month and day. It fails with KindInvalidDate
// if the triple does not name a real day of the proleptic Gregorian calendar.
func DateOf(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December || day < 1 || day > daysIn(year, int(month)) {
		return Date{}, invalidDate("DateOf", year, int(month), day)
	}
	return newDate(year, month, day), nil
}

// MustDateOf is like DateOf but panics on an invalid triple.
func MustDateOf(year int, month time.Month, day int) Date {
	d, err := DateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOfTime returns the wall-clock date of t in t's location.
func DateOfTime(t time.Time) Date {
	y, m, d := t.Date()
	return newDate(y, m, d)
}

func newDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// YearDay returns the day of the year, 1 through 365 or 366.
func (d Date) YearDay() int { return d.t.YearDay() }

// LengthOfMonth returns the number of days in d's month.
func (d Date) LengthOfMonth() int { return daysIn(d.Year(), int(d.Month())) }

// LengthOfYear returns 366 in leap years and 365 otherwise.
func (d Date) LengthOfYear() int {
	if IsLeap(d.Year()) {
		return 366
	}
	return 365
}

// PlusDays returns d moved by n days. n may be negative.
func (d Date) PlusDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// PlusMonths returns d moved by n months. The day is clamped to the length
// of the resulting month, so Jan 31 plus one month is Feb 28 or 29.
func (d Date) PlusMonths(n int) Date {
	if n == 0 {
		return d
	}
	pm := prolepticMonth(d) + int64(n)
	year := int(floorDiv(pm, 12))
	month := time.Month(floorMod(pm, 12) + 1)
	day := d.Day()
	if last := daysIn(year, int(month)); day > last {
		day = last
	}
	return newDate(year, month, day)
}

// PlusYears returns d moved by n years. Feb 29 becomes Feb 28 in a common year.
func (d Date) PlusYears(n int) Date {
	return d.PlusMonths(n * 12)
}

// At combines d with a time of day.
func (d Date) At(t Time) DateTime {
	return DateTime{t: d.t.Add(time.Duration(t.ns))}
}

// AtStartOfDay is d at 00:00:00.
func (d Date) AtStartOfDay() DateTime {
	return DateTime{t: d.t}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// Format renders d with pattern. An empty pattern means DatePattern.
func (d Date) Format(pattern string) (string, error) {
	return formatValue("Date.Format", fields{date: d, hasDate: true}, pattern, DatePattern)
}

// String renders d with DatePattern.
func (d Date) String() string {
	s, _ := d.Format(DatePattern)
	return s
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDateWith(string(b), DatePattern)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// epochDay is the number of days since 1970-01-01.
func (d Date) epochDay() int64 {
	return floorDiv(d.t.Unix(), secondsPerDay)
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeapYear reports whether d falls in a leap year.
func IsLeapYear(d Date) bool {
	return IsLeap(d.Year())
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func prolepticMonth(d Date) int64 {
	return int64(d.Year())*12 + int64(d.Month()) - 1
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
