package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/wenzisay/localdate/pkg/localdate"
)

// monthGrid returns the weeks covering d's month, each starting on weekStart.
// Days of the neighbouring months fill the first and last week.
func monthGrid(d localdate.Date, weekStart time.Weekday) [][]localdate.Date {
	first := localdate.PreviousOrSame(localdate.FirstDayOfMonth(d), weekStart)
	last := localdate.NextOrSame(localdate.LastDayOfMonth(d), (weekStart+6)%7)

	var weeks [][]localdate.Date
	for day := first; !day.After(last); day = day.PlusDays(7) {
		week := make([]localdate.Date, 7)
		for i := range week {
			week[i] = day.PlusDays(i)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func weekdayHeader(weekStart time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = ((weekStart + time.Weekday(i)) % 7).String()[:2]
	}
	return out
}

func renderMonth(th Theme, selected, today localdate.Date, weekStart time.Weekday) string {
	var b strings.Builder

	title, _ := selected.Format("MMMM yyyy")
	b.WriteString(th.Title.Render(title))
	b.WriteString("\n")

	for i, h := range weekdayHeader(weekStart) {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(th.Header.Render(fmt.Sprintf("%2s", h)))
	}

	for _, week := range monthGrid(selected, weekStart) {
		b.WriteString("\n")
		for i, d := range week {
			if i > 0 {
				b.WriteString(" ")
			}
			style := th.Day
			switch {
			case d == selected:
				style = th.Selected
			case d == today:
				style = th.Today
			case d.Month() != selected.Month():
				style = th.Outside
			}
			b.WriteString(style.Render(fmt.Sprintf("%2d", d.Day())))
		}
	}
	return b.String()
}

func renderDetails(selected, today localdate.Date) string {
	var b strings.Builder

	long, _ := selected.Format("EEEE, d MMMM yyyy")
	b.WriteString(long)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Day %d of %d", selected.YearDay(), selected.LengthOfYear()))
	if localdate.IsLeapYear(selected) {
		b.WriteString(" (leap year)")
	}
	b.WriteString("\n")

	switch n := localdate.DiffDays(today, selected); {
	case n == 0:
		b.WriteString("Today")
	case n == 1:
		b.WriteString("Tomorrow")
	case n == -1:
		b.WriteString("Yesterday")
	case n > 0:
		b.WriteString(fmt.Sprintf("In %d days", n))
	default:
		b.WriteString(fmt.Sprintf("%d days ago", -n))
	}
	return b.String()
}
