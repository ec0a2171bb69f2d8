package localdate

import "time"

// Clock supplies the current instant. It exists so callers can pin "now" in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Today returns the current local date.
func Today() Date { return TodayFrom(SystemClock{}) }

// NowTime returns the current local time of day, including sub-second precision.
func NowTime() Time { return NowTimeFrom(SystemClock{}) }

// NowTimeWithoutNano returns the current local time of day with the sub-second part zeroed.
func NowTimeWithoutNano() Time { return NowTimeWithoutNanoFrom(SystemClock{}) }

// NowDateTime returns the current local date and time.
func NowDateTime() DateTime { return NowDateTimeFrom(SystemClock{}) }

func TodayFrom(c Clock) Date {
	return DateOfTime(c.Now())
}

func NowTimeFrom(c Clock) Time {
	return TimeOfTime(c.Now())
}

func NowTimeWithoutNanoFrom(c Clock) Time {
	return TimeOfTime(c.Now()).TruncateNano()
}

func NowDateTimeFrom(c Clock) DateTime {
	return DateTimeOfTime(c.Now())
}
