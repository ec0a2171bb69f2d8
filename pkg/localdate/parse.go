package localdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ParseDate parses text with DatePattern. If that fails it retries with
// DateTimePattern and keeps the date part, so both "2018-11-01" and
// "2018-11-01 11:11:11" are accepted.
func ParseDate(text string) (Date, error) {
	d, err := parseDate("ParseDate", text, DatePattern)
	if err == nil {
		return d, nil
	}
	return parseDate("ParseDate", text, DateTimePattern)
}

// ParseDateWith parses text with pattern. An empty pattern behaves like ParseDate.
func ParseDateWith(text, pattern string) (Date, error) {
	if pattern == "" {
		return ParseDate(text)
	}
	return parseDate("ParseDateWith", text, pattern)
}

// ParseDateTime parses text with DateTimePattern.
func ParseDateTime(text string) (DateTime, error) {
	return parseDateTime("ParseDateTime", text, DateTimePattern)
}

// ParseDateTimeWith parses text with pattern, or DateTimePattern if pattern is empty.
func ParseDateTimeWith(text, pattern string) (DateTime, error) {
	if pattern == "" {
		pattern = DateTimePattern
	}
	return parseDateTime("ParseDateTimeWith", text, pattern)
}

// ParseTime parses text with TimePattern. If that fails it retries with
// DateTimePattern and keeps the time of day.
func ParseTime(text string) (Time, error) {
	t, err := parseTime("ParseTime", text, TimePattern)
	if err == nil {
		return t, nil
	}
	return parseTime("ParseTime", text, DateTimePattern)
}

// ParseTimeWith parses text with pattern, or TimePattern if pattern is empty.
// Unlike ParseTime there is no fallback.
func ParseTimeWith(text, pattern string) (Time, error) {
	if pattern == "" {
		pattern = TimePattern
	}
	return parseTime("ParseTimeWith", text, pattern)
}

func parseDate(op, text, pattern string) (Date, error) {
	p, err := scan(op, text, pattern)
	if err != nil {
		return Date{}, err
	}
	d, err := p.resolveDate()
	if err != nil {
		return Date{}, parseError(op, text, pattern, err)
	}
	return d, nil
}

func parseTime(op, text, pattern string) (Time, error) {
	p, err := scan(op, text, pattern)
	if err != nil {
		return Time{}, err
	}
	t, err := p.resolveTime()
	if err != nil {
		return Time{}, parseError(op, text, pattern, err)
	}
	return t, nil
}

func parseDateTime(op, text, pattern string) (DateTime, error) {
	p, err := scan(op, text, pattern)
	if err != nil {
		return DateTime{}, err
	}
	d, err := p.resolveDate()
	if err != nil {
		return DateTime{}, parseError(op, text, pattern, err)
	}
	t, err := p.resolveTime()
	if err != nil {
		return DateTime{}, parseError(op, text, pattern, err)
	}
	return d.At(t), nil
}

func parseError(op, text, pattern string, cause error) error {
	return &Error{Op: op, Kind: KindParse, Input: text, Pattern: pattern, Err: cause}
}

// scan compiles pattern and matches text against it. A bad pattern is a
// KindFormat error, a mismatch a KindParse error.
func scan(op, text, pattern string) (*parsed, error) {
	l, err := lookupLayout(pattern)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindFormat, Input: text, Pattern: pattern, Err: err}
	}
	p, err := l.parse(text)
	if err != nil {
		return nil, parseError(op, text, pattern, err)
	}
	return p, nil
}

const unset = -1

// parsed holds the raw field values read from text. unset marks an absent field.
type parsed struct {
	year      int
	hasYear   bool
	month     int
	day       int
	yearDay   int
	weekday   int
	ampm      int
	hourOfDay int
	hourAmPm  int
	minute    int
	second    int
	nano      int
}

func newParsed() *parsed {
	return &parsed{
		month: unset, day: unset, yearDay: unset, weekday: unset,
		ampm: unset, hourOfDay: unset, hourAmPm: unset,
		minute: unset, second: unset, nano: unset,
	}
}

func (l *layout) parse(text string) (*parsed, error) {
	p := newParsed()
	pos := 0

	for i, tok := range l.tokens {
		rest := text[pos:]

		if tok.field == fieldLiteral {
			if !strings.HasPrefix(rest, tok.lit) {
				return nil, fmt.Errorf("expected %q at index %d", tok.lit, pos)
			}
			pos += len(tok.lit)
			continue
		}

		if !tok.numeric() {
			v, n, err := matchText(tok, rest)
			if err != nil {
				return nil, fmt.Errorf("%s at index %d: %w", fieldNames[tok.field], pos, err)
			}
			if err := p.set(tok.field, v); err != nil {
				return nil, err
			}
			pos += n
			continue
		}

		minW, maxW := widths(tok)
		if i+1 < len(l.tokens) && l.tokens[i+1].numeric() {
			maxW = minW
		}
		v, n := readDigits(rest, maxW)
		if n < minW {
			return nil, fmt.Errorf("%s at index %d: expected %d digit(s)", fieldNames[tok.field], pos, minW)
		}
		pos += n

		switch tok.field {
		case fieldYearOfCentury:
			v += 2000
		case fieldFraction:
			for k := n; k < 9; k++ {
				v *= 10
			}
		}
		if err := p.set(tok.field, v); err != nil {
			return nil, err
		}
	}

	if pos != len(text) {
		return nil, fmt.Errorf("unparsed text found at index %d", pos)
	}
	return p, nil
}

// widths returns the accepted digit counts for a numeric token.
func widths(tok token) (int, int) {
	switch tok.field {
	case fieldYear:
		return tok.count, 10
	case fieldYearOfCentury:
		return 2, 2
	case fieldYearDay:
		return tok.count, 3
	case fieldFraction:
		return tok.count, tok.count
	case fieldNano:
		return tok.count, 9
	}
	if tok.count == 1 {
		return 1, 2
	}
	return 2, 2
}

func readDigits(s string, limit int) (value int, n int) {
	for n < len(s) && n < limit && s[n] >= '0' && s[n] <= '9' {
		value = value*10 + int(s[n]-'0')
		n++
	}
	return value, n
}

var errNoMatch = errors.New("no matching name")

func matchText(tok token, s string) (value int, n int, err error) {
	switch tok.field {
	case fieldMonth:
		for m := time.January; m <= time.December; m++ {
			name := m.String()
			if tok.count == 3 {
				name = name[:3]
			}
			if hasFoldPrefix(s, name) {
				return int(m), len(name), nil
			}
		}
	case fieldWeekday:
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			name := wd.String()
			if tok.count < 4 {
				name = name[:3]
			}
			if hasFoldPrefix(s, name) {
				return int(wd), len(name), nil
			}
		}
	case fieldAmPm:
		switch {
		case hasFoldPrefix(s, "AM"):
			return 0, 2, nil
		case hasFoldPrefix(s, "PM"):
			return 1, 2, nil
		}
	}
	return 0, 0, errNoMatch
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (p *parsed) set(f field, v int) error {
	var slot *int
	switch f {
	case fieldYear, fieldYearOfCentury:
		if p.hasYear && p.year != v {
			return conflict(f, p.year, v)
		}
		p.year, p.hasYear = v, true
		return nil
	case fieldMonth:
		slot = &p.month
	case fieldDay:
		slot = &p.day
	case fieldYearDay:
		slot = &p.yearDay
	case fieldWeekday:
		slot = &p.weekday
	case fieldAmPm:
		slot = &p.ampm
	case fieldHour:
		slot = &p.hourOfDay
	case fieldClockDay:
		if v < 1 || v > 24 {
			return outOfRange(f, v)
		}
		v %= 24
		slot = &p.hourOfDay
	case fieldHourAmPm:
		if v > 11 {
			return outOfRange(f, v)
		}
		slot = &p.hourAmPm
	case fieldClockAmPm:
		if v < 1 || v > 12 {
			return outOfRange(f, v)
		}
		v %= 12
		slot = &p.hourAmPm
	case fieldMinute:
		slot = &p.minute
	case fieldSecond:
		slot = &p.second
	case fieldFraction, fieldNano:
		slot = &p.nano
	default:
		return fmt.Errorf("unexpected field %d", f)
	}
	if *slot != unset && *slot != v {
		return conflict(f, *slot, v)
	}
	*slot = v
	return nil
}

func conflict(f field, a, b int) error {
	return fmt.Errorf("conflicting values for %s: %d and %d", fieldNames[f], a, b)
}

func outOfRange(f field, v int) error {
	return fmt.Errorf("%s value %d out of range", fieldNames[f], v)
}

func (p *parsed) resolveDate() (Date, error) {
	if !p.hasYear {
		return Date{}, errors.New("unable to obtain a date: no year")
	}

	var d Date
	switch {
	case p.month != unset && p.day != unset:
		if p.month < 1 || p.month > 12 {
			return Date{}, outOfRange(fieldMonth, p.month)
		}
		if p.day < 1 || p.day > daysIn(p.year, p.month) {
			return Date{}, fmt.Errorf("invalid date %s %d, %d", time.Month(p.month), p.day, p.year)
		}
		d = newDate(p.year, time.Month(p.month), p.day)
		if p.yearDay != unset && d.YearDay() != p.yearDay {
			return Date{}, conflict(fieldYearDay, d.YearDay(), p.yearDay)
		}
	case p.yearDay != unset:
		last := 365
		if IsLeap(p.year) {
			last = 366
		}
		if p.yearDay < 1 || p.yearDay > last {
			return Date{}, outOfRange(fieldYearDay, p.yearDay)
		}
		d = newDate(p.year, time.January, 1).PlusDays(p.yearDay - 1)
		if p.month != unset && int(d.Month()) != p.month {
			return Date{}, conflict(fieldMonth, int(d.Month()), p.month)
		}
	default:
		return Date{}, errors.New("unable to obtain a date: need month and day, or day-of-year")
	}

	if p.weekday != unset && int(d.Weekday()) != p.weekday {
		return Date{}, fmt.Errorf("conflicting day-of-week: %s is a %s, not %s", d, d.Weekday(), time.Weekday(p.weekday))
	}
	return d, nil
}

func (p *parsed) resolveTime() (Time, error) {
	hour := p.hourOfDay
	if p.hourAmPm != unset {
		if p.ampm == unset {
			return Time{}, errors.New("unable to obtain a time: 12-hour clock without am-pm marker")
		}
		h := p.hourAmPm + 12*p.ampm
		if hour != unset && hour != h {
			return Time{}, conflict(fieldHour, hour, h)
		}
		hour = h
	} else if hour != unset && p.ampm != unset && hour/12 != p.ampm {
		return Time{}, conflict(fieldAmPm, hour/12, p.ampm)
	}
	if hour == unset {
		return Time{}, errors.New("unable to obtain a time: no hour")
	}

	orZero := func(v int) int {
		if v == unset {
			return 0
		}
		return v
	}
	t, err := TimeOf(hour, orZero(p.minute), orZero(p.second), orZero(p.nano))
	if err != nil {
		var le *Error
		if errors.As(err, &le) {
			return Time{}, le.Err
		}
		return Time{}, err
	}
	return t, nil
}
