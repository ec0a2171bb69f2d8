package localdate

import "time"

// Clocked is a value with a time of day, so elapsed durations between two
// of them are defined.
type Clocked interface {
	Time | DateTime
}

// Dated is a value with a calendar date, so calendar-unit differences
// between two of them are defined.
type Dated interface {
	Date | DateTime
}

// DiffMillis returns the elapsed milliseconds from start to end, truncated
// toward zero. The result is negative when end is before start.
func DiffMillis[T Clocked](start, end T) int64 {
	secs, nanos := elapsed(start, end)
	return secs*1000 + nanos/int64(time.Millisecond)
}

// DiffSeconds returns the elapsed whole seconds from start to end.
func DiffSeconds[T Clocked](start, end T) int64 {
	secs, _ := elapsed(start, end)
	return secs
}

// DiffMinutes returns the elapsed whole minutes from start to end.
func DiffMinutes[T Clocked](start, end T) int64 {
	secs, _ := elapsed(start, end)
	return secs / 60
}

// DiffHours returns the elapsed whole hours from start to end. Truncation is
// toward zero: -166.67 hours is -166.
func DiffHours[T Clocked](start, end T) int64 {
	secs, _ := elapsed(start, end)
	return secs / 3600
}

// elapsed returns end-start as seconds plus a nanosecond remainder with the
// same sign, so that integer division truncates toward zero.
func elapsed[T Clocked](start, end T) (secs int64, nanos int64) {
	switch s := any(start).(type) {
	case Time:
		d := any(end).(Time).ns - s.ns
		return d / int64(time.Second), d % int64(time.Second)
	case DateTime:
		e := any(end).(DateTime)
		secs = e.t.Unix() - s.t.Unix()
		nanos = int64(e.t.Nanosecond() - s.t.Nanosecond())
	}
	switch {
	case secs > 0 && nanos < 0:
		secs--
		nanos += int64(time.Second)
	case secs < 0 && nanos > 0:
		secs++
		nanos -= int64(time.Second)
	}
	return secs, nanos
}

// DiffDays returns the number of whole days from start to end.
func DiffDays[T Dated](start, end T) int64 {
	s, e := calendarSpan(start, end)
	return e.epochDay() - s.epochDay()
}

// DiffMonths returns the number of whole months from start to end. A month is
// complete once the day of month is reached again, so 2018-01-31 to
// 2018-03-01 is one month.
func DiffMonths[T Dated](start, end T) int64 {
	s, e := calendarSpan(start, end)
	return monthsBetween(s, e)
}

// DiffYears returns the number of whole years from start to end.
func DiffYears[T Dated](start, end T) int64 {
	s, e := calendarSpan(start, end)
	return monthsBetween(s, e) / 12
}

func monthsBetween(s, e Date) int64 {
	packed1 := prolepticMonth(s)*32 + int64(s.Day())
	packed2 := prolepticMonth(e)*32 + int64(e.Day())
	return (packed2 - packed1) / 32
}

// calendarSpan reduces two values to the pair of dates whose calendar
// distance equals theirs. For date-times the end date moves one day toward
// start when its time of day has not yet reached start's.
func calendarSpan[T Dated](start, end T) (Date, Date) {
	switch s := any(start).(type) {
	case Date:
		return s, any(end).(Date)
	case DateTime:
		e := any(end).(DateTime)
		sd, ed := s.Date(), e.Date()
		st, et := s.Time(), e.Time()
		switch {
		case ed.After(sd) && et.Before(st):
			ed = ed.PlusDays(-1)
		case ed.Before(sd) && et.After(st):
			ed = ed.PlusDays(1)
		}
		return sd, ed
	}
	panic("unreachable")
}
