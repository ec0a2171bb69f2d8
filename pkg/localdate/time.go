package localdate

import (
	"fmt"
	"time"
)

// Time is a time of day with nanosecond precision, without a date or zone.
// The zero value is midnight.
type Time struct {
	ns int64 // nanoseconds since midnight, in [0, nanosPerDay)
}

// TimeOf returns the time hour:minute:second.nanosecond. It fails with
// KindInvalidTime if any field is out of range.
func TimeOf(hour, minute, second, nanosecond int) (Time, error) {
	var cause error
	switch {
	case hour < 0 || hour > 23:
		cause = fmt.Errorf("hour %d out of range 0-23", hour)
	case minute < 0 || minute > 59:
		cause = fmt.Errorf("minute %d out of range 0-59", minute)
	case second < 0 || second > 59:
		cause = fmt.Errorf("second %d out of range 0-59", second)
	case nanosecond < 0 || nanosecond > 999_999_999:
		cause = fmt.Errorf("nanosecond %d out of range 0-999999999", nanosecond)
	}
	if cause != nil {
		return Time{}, &Error{
			Op:    "TimeOf",
			Kind:  KindInvalidTime,
			Input: fmt.Sprintf("%02d:%02d:%02d.%09d", hour, minute, second, nanosecond),
			Err:   cause,
		}
	}
	return newTime(hour, minute, second, nanosecond), nil
}

// TimeOfTime returns the wall-clock time of day of t in t's location.
func TimeOfTime(t time.Time) Time {
	h, m, s := t.Clock()
	return newTime(h, m, s, t.Nanosecond())
}

func newTime(hour, minute, second, nanosecond int) Time {
	ns := (int64(hour)*3600+int64(minute)*60+int64(second))*int64(time.Second) + int64(nanosecond)
	return Time{ns: ns}
}

func (t Time) Hour() int       { return int(t.ns / int64(time.Hour)) }
func (t Time) Minute() int     { return int(t.ns / int64(time.Minute) % 60) }
func (t Time) Second() int     { return int(t.ns / int64(time.Second) % 60) }
func (t Time) Nanosecond() int { return int(t.ns % int64(time.Second)) }

// SinceMidnight returns the elapsed time since 00:00.
func (t Time) SinceMidnight() time.Duration { return time.Duration(t.ns) }

// WithNano returns t with the sub-second part replaced. It fails with
// KindInvalidTime if nanosecond is out of range.
func (t Time) WithNano(nanosecond int) (Time, error) {
	return TimeOf(t.Hour(), t.Minute(), t.Second(), nanosecond)
}

// TruncateNano returns t with the sub-second part zeroed.
func (t Time) TruncateNano() Time {
	return Time{ns: t.ns - t.ns%int64(time.Second)}
}

// PlusDuration returns t moved by d, wrapping around midnight.
func (t Time) PlusDuration(d time.Duration) Time {
	return Time{ns: floorMod(t.ns+int64(d)%nanosPerDay, nanosPerDay)}
}

func (t Time) Before(o Time) bool { return t.ns < o.ns }
func (t Time) After(o Time) bool  { return t.ns > o.ns }
func (t Time) Equal(o Time) bool  { return t.ns == o.ns }

// Compare returns -1, 0 or +1.
func (t Time) Compare(o Time) int {
	switch {
	case t.ns < o.ns:
		return -1
	case t.ns > o.ns:
		return 1
	}
	return 0
}

// Format renders t with pattern. An empty pattern means TimePattern.
func (t Time) Format(pattern string) (string, error) {
	return formatValue("Time.Format", fields{time: t, hasTime: true}, pattern, TimePattern)
}

// String renders t with TimePattern.
func (t Time) String() string {
	s, _ := t.Format(TimePattern)
	return s
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTimeWith(string(b), TimePattern)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
