package localdate

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind. errors.Is matches an *Error against the
// sentinel of its kind.
var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
	ErrParse       = errors.New("parse error")
	ErrFormat      = errors.New("format error")
)

// Kind classifies an *Error.
type Kind string

const (
	KindInvalidDate Kind = "invalid_date"
	KindInvalidTime Kind = "invalid_time"
	KindParse       Kind = "parse"
	KindFormat      Kind = "format"
)

// Error is returned by every failing operation in this package.
type Error struct {
	Op      string
	Kind    Kind
	Input   string // text being parsed, or the offending value
	Pattern string // resolved pattern, if any
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("localdate.%s: %s", e.Op, e.Kind)
	if e.Input != "" {
		base += fmt.Sprintf(" (input=%q", e.Input)
		if e.Pattern != "" {
			base += fmt.Sprintf(", pattern=%q", e.Pattern)
		}
		base += ")"
	} else if e.Pattern != "" {
		base += fmt.Sprintf(" (pattern=%q)", e.Pattern)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidDate:
		return e.Kind == KindInvalidDate
	case ErrInvalidTime:
		return e.Kind == KindInvalidTime
	case ErrParse:
		return e.Kind == KindParse
	case ErrFormat:
		return e.Kind == KindFormat
	}
	return false
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind == kind
	}
	return false
}

func invalidDate(op string, year int, month int, day int) error {
	return &Error{
		Op:    op,
		Kind:  KindInvalidDate,
		Input: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		Err:   dateRangeCause(year, month, day),
	}
}

func dateRangeCause(year, month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range 1-12", month)
	}
	return fmt.Errorf("day %d out of range 1-%d", day, daysIn(year, month))
}
