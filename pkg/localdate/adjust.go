package localdate

import (
	"fmt"
	"strings"
	"time"
)

func FirstDayOfMonth(d Date) Date {
	return newDate(d.Year(), d.Month(), 1)
}

// LastDayOfMonth accounts for month length and leap years.
func LastDayOfMonth(d Date) Date {
	return newDate(d.Year(), d.Month(), d.LengthOfMonth())
}

func FirstDayOfNextMonth(d Date) Date {
	return FirstDayOfMonth(d).PlusMonths(1)
}

func LastDayOfNextMonth(d Date) Date {
	return LastDayOfMonth(FirstDayOfNextMonth(d))
}

func FirstDayOfYear(d Date) Date {
	return newDate(d.Year(), time.January, 1)
}

func LastDayOfYear(d Date) Date {
	return newDate(d.Year(), time.December, 31)
}

func FirstDayOfNextYear(d Date) Date {
	return newDate(d.Year()+1, time.January, 1)
}

func LastDayOfNextYear(d Date) Date {
	return newDate(d.Year()+1, time.December, 31)
}

func FirstDayOfLastYear(d Date) Date {
	return newDate(d.Year()-1, time.January, 1)
}

func LastDayOfLastYear(d Date) Date {
	return newDate(d.Year()-1, time.December, 31)
}

// FirstInMonth returns the first day of d's month that falls on wd.
func FirstInMonth(d Date, wd time.Weekday) Date {
	return NextOrSame(FirstDayOfMonth(d), wd)
}

// LastInMonth returns the last day of d's month that falls on wd.
func LastInMonth(d Date, wd time.Weekday) Date {
	return PreviousOrSame(LastDayOfMonth(d), wd)
}

// Next returns the first date strictly after d that falls on wd.
func Next(d Date, wd time.Weekday) Date {
	diff := (int(wd) - int(d.Weekday()) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return d.PlusDays(diff)
}

// Previous returns the last date strictly before d that falls on wd.
func Previous(d Date, wd time.Weekday) Date {
	diff := (int(d.Weekday()) - int(wd) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return d.PlusDays(-diff)
}

// NextOrSame returns d if it falls on wd, otherwise Next(d, wd).
func NextOrSame(d Date, wd time.Weekday) Date {
	if d.Weekday() == wd {
		return d
	}
	return Next(d, wd)
}

// PreviousOrSame returns d if it falls on wd, otherwise Previous(d, wd).
func PreviousOrSame(d Date, wd time.Weekday) Date {
	if d.Weekday() == wd {
		return d
	}
	return Previous(d, wd)
}

// ParseWeekday accepts an English weekday name, full or three-letter, in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.TrimSpace(s)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := wd.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return wd, nil
		}
	}
	return 0, &Error{Op: "ParseWeekday", Kind: KindParse, Input: s, Err: fmt.Errorf("unknown weekday %q", s)}
}
