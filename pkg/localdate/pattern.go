package localdate

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// Default patterns, used whenever a call receives an empty pattern.
const (
	DateTimePattern = "yyyy-MM-dd HH:mm:ss"
	DatePattern     = "yyyy-MM-dd"
	TimePattern     = "HH:mm:ss"
)

type field int

const (
	fieldLiteral field = iota
	fieldYear
	fieldYearOfCentury
	fieldMonth
	fieldDay
	fieldYearDay
	fieldWeekday
	fieldAmPm
	fieldHour     // H, 0-23
	fieldClockDay // k, 1-24
	fieldHourAmPm // K, 0-11
	fieldClockAmPm
	fieldMinute
	fieldSecond
	fieldFraction
	fieldNano
)

var fieldNames = map[field]string{
	fieldYear:          "year",
	fieldYearOfCentury: "year",
	fieldMonth:         "month",
	fieldDay:           "day-of-month",
	fieldYearDay:       "day-of-year",
	fieldWeekday:       "day-of-week",
	fieldAmPm:          "am-pm",
	fieldHour:          "hour-of-day",
	fieldClockDay:      "clock-hour-of-day",
	fieldHourAmPm:      "hour-of-am-pm",
	fieldClockAmPm:     "clock-hour-of-am-pm",
	fieldMinute:        "minute-of-hour",
	fieldSecond:        "second-of-minute",
	fieldFraction:      "fraction-of-second",
	fieldNano:          "nano-of-second",
}

func (f field) isDate() bool {
	switch f {
	case fieldYear, fieldYearOfCentury, fieldMonth, fieldDay, fieldYearDay, fieldWeekday:
		return true
	}
	return false
}

func (f field) isTime() bool {
	return f != fieldLiteral && !f.isDate()
}

// letterSpec describes one pattern letter and the largest run of it accepted.
type letterSpec struct {
	field    field
	maxCount int
}

var letters = map[rune]letterSpec{
	'y': {fieldYear, 9},
	'u': {fieldYear, 9},
	'M': {fieldMonth, 4},
	'L': {fieldMonth, 4},
	'd': {fieldDay, 2},
	'D': {fieldYearDay, 3},
	'E': {fieldWeekday, 4},
	'a': {fieldAmPm, 1},
	'H': {fieldHour, 2},
	'k': {fieldClockDay, 2},
	'K': {fieldHourAmPm, 2},
	'h': {fieldClockAmPm, 2},
	'm': {fieldMinute, 2},
	's': {fieldSecond, 2},
	'S': {fieldFraction, 9},
	'n': {fieldNano, 9},
}

type token struct {
	field field
	count int
	lit   string
}

func (t token) numeric() bool {
	switch t.field {
	case fieldLiteral, fieldAmPm, fieldWeekday:
		return false
	case fieldMonth:
		return t.count <= 2
	}
	return true
}

// layout is a compiled pattern.
type layout struct {
	pattern string
	tokens  []token
	hasDate bool
	hasTime bool
}

// ValidatePattern reports whether pattern is a well-formed pattern. The
// error, if any, is of kind KindFormat.
func ValidatePattern(pattern string) error {
	if _, err := lookupLayout(pattern); err != nil {
		return &Error{Op: "ValidatePattern", Kind: KindFormat, Pattern: pattern, Err: err}
	}
	return nil
}

func compile(pattern string) (*layout, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}

	l := &layout{pattern: pattern}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			l.tokens = append(l.tokens, token{field: fieldLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])

		switch {
		case isASCIILetter(r):
			n := 1
			for i+n < len(pattern) && rune(pattern[i+n]) == r {
				n++
			}
			spec, ok := letters[r]
			if !ok {
				return nil, fmt.Errorf("unknown pattern letter %q at index %d", r, i)
			}
			if n > spec.maxCount {
				return nil, fmt.Errorf("too many pattern letters %q at index %d", strings.Repeat(string(r), n), i)
			}
			f := spec.field
			if f == fieldYear && n == 2 {
				f = fieldYearOfCentury
			}
			flush()
			l.tokens = append(l.tokens, token{field: f, count: n})
			l.hasDate = l.hasDate || f.isDate()
			l.hasTime = l.hasTime || f.isTime()
			i += n

		case r == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				k := strings.IndexByte(pattern[j:], '\'')
				if k < 0 {
					return nil, fmt.Errorf("unterminated quote at index %d", i)
				}
				lit.WriteString(pattern[j : j+k])
				j += k + 1
				if j < len(pattern) && pattern[j] == '\'' {
					lit.WriteByte('\'')
					j++
					continue
				}
				break
			}
			i = j

		case strings.ContainsRune("[]{}#", r):
			return nil, fmt.Errorf("reserved character %q at index %d", r, i)

		default:
			lit.WriteRune(r)
			i += size
		}
	}
	flush()
	return l, nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

const maxCachedLayouts = 256

var layoutCache = struct {
	sync.RWMutex
	m map[string]*layout
}{m: make(map[string]*layout)}

// lookupLayout returns the compiled layout for pattern, compiling it on first use.
func lookupLayout(pattern string) (*layout, error) {
	layoutCache.RLock()
	l, ok := layoutCache.m[pattern]
	layoutCache.RUnlock()
	if ok {
		return l, nil
	}

	l, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	layoutCache.Lock()
	if len(layoutCache.m) < maxCachedLayouts {
		layoutCache.m[pattern] = l
	}
	layoutCache.Unlock()
	return l, nil
}
