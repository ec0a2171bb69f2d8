package localdate

import (
	"fmt"
	"strconv"
	"strings"
)

// fields is the value being formatted. A Date carries no time and a Time no date.
type fields struct {
	date    Date
	time    Time
	hasDate bool
	hasTime bool
}

// FormatDateTime renders dt with pattern. A nil dt yields "" and no error.
// An empty pattern means DateTimePattern.
func FormatDateTime(dt *DateTime, pattern string) (string, error) {
	if dt == nil {
		return "", nil
	}
	return dt.Format(pattern)
}

// FormatDate renders d with pattern. A nil d yields "" and no error.
// An empty pattern means DatePattern.
func FormatDate(d *Date, pattern string) (string, error) {
	if d == nil {
		return "", nil
	}
	return d.Format(pattern)
}

// FormatTime renders t with pattern. A nil t yields "" and no error.
// An empty pattern means TimePattern.
func FormatTime(t *Time, pattern string) (string, error) {
	if t == nil {
		return "", nil
	}
	return t.Format(pattern)
}

func formatValue(op string, f fields, pattern, fallback string) (string, error) {
	if pattern == "" {
		pattern = fallback
	}
	l, err := lookupLayout(pattern)
	if err != nil {
		return "", &Error{Op: op, Kind: KindFormat, Pattern: pattern, Err: err}
	}
	s, err := l.format(f)
	if err != nil {
		return "", &Error{Op: op, Kind: KindFormat, Pattern: pattern, Err: err}
	}
	return s, nil
}

func (l *layout) format(f fields) (string, error) {
	var b strings.Builder
	b.Grow(len(l.pattern) + 8)

	for _, tok := range l.tokens {
		if tok.field == fieldLiteral {
			b.WriteString(tok.lit)
			continue
		}
		if tok.field.isDate() && !f.hasDate {
			return "", fmt.Errorf("unsupported field %s: value has no date", fieldNames[tok.field])
		}
		if tok.field.isTime() && !f.hasTime {
			return "", fmt.Errorf("unsupported field %s: value has no time of day", fieldNames[tok.field])
		}

		d, t := f.date, f.time
		switch tok.field {
		case fieldYear:
			y := d.Year()
			if y < 0 {
				b.WriteByte('-')
				y = -y
			}
			b.WriteString(pad(y, tok.count))
		case fieldYearOfCentury:
			y := d.Year() % 100
			if y < 0 {
				y = -y
			}
			b.WriteString(pad(y, 2))
		case fieldMonth:
			switch tok.count {
			case 1, 2:
				b.WriteString(pad(int(d.Month()), tok.count))
			case 3:
				b.WriteString(d.Month().String()[:3])
			default:
				b.WriteString(d.Month().String())
			}
		case fieldDay:
			b.WriteString(pad(d.Day(), tok.count))
		case fieldYearDay:
			b.WriteString(pad(d.YearDay(), tok.count))
		case fieldWeekday:
			if tok.count == 4 {
				b.WriteString(d.Weekday().String())
			} else {
				b.WriteString(d.Weekday().String()[:3])
			}
		case fieldAmPm:
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case fieldHour:
			b.WriteString(pad(t.Hour(), tok.count))
		case fieldClockDay:
			h := t.Hour()
			if h == 0 {
				h = 24
			}
			b.WriteString(pad(h, tok.count))
		case fieldHourAmPm:
			b.WriteString(pad(t.Hour()%12, tok.count))
		case fieldClockAmPm:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(pad(h, tok.count))
		case fieldMinute:
			b.WriteString(pad(t.Minute(), tok.count))
		case fieldSecond:
			b.WriteString(pad(t.Second(), tok.count))
		case fieldFraction:
			b.WriteString(pad(t.Nanosecond(), 9)[:tok.count])
		case fieldNano:
			b.WriteString(pad(t.Nanosecond(), tok.count))
		}
	}
	return b.String(), nil
}

// pad renders a non-negative n with at least width digits.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
