package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/pkg/localdate"
)

const (
	nanoTimePattern     = "HH:mm:ss.SSSSSSSSS"
	nanoDateTimePattern = "yyyy-MM-dd HH:mm:ss.SSSSSSSSS"
)

// Evaluator runs localdate operations on text input, using the configured
// patterns wherever the caller does not pass one.
type Evaluator struct {
	cfg   domain.Config
	clock localdate.Clock
	log   *slog.Logger
}

type EvaluatorOption func(*Evaluator)

func WithClock(c localdate.Clock) EvaluatorOption {
	return func(e *Evaluator) {
		if c != nil {
			e.clock = c
		}
	}
}

func WithLogger(l *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEvaluator(cfg domain.Config, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		cfg:   cfg,
		clock: localdate.SystemClock{},
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Config() domain.Config { return e.cfg }

// Now renders the current date, time, time-no-nano or datetime. Empty kind means datetime.
func (e *Evaluator) Now(kind string) (domain.Result, error) {
	var (
		value   string
		pattern string
		err     error
	)

	switch kind {
	case "date":
		pattern = e.cfg.Patterns.Date
		value, err = localdate.TodayFrom(e.clock).Format(pattern)
	case "time":
		pattern = nanoTimePattern
		value, err = localdate.NowTimeFrom(e.clock).Format(pattern)
	case "time-no-nano":
		pattern = e.cfg.Patterns.Time
		value, err = localdate.NowTimeWithoutNanoFrom(e.clock).Format(pattern)
	case "datetime", "":
		kind = "datetime"
		pattern = e.cfg.Patterns.DateTime
		value, err = localdate.NowDateTimeFrom(e.clock).Format(pattern)
	default:
		return domain.Result{}, invalidInput("usecase.now",
			fmt.Errorf("unknown kind %q (expected date|time|time-no-nano|datetime)", kind))
	}
	if err != nil {
		return domain.Result{}, invalidInput("usecase.now", err)
	}

	return domain.Result{Op: "now " + kind, Pattern: pattern, Value: value}, nil
}

// Parse reads text as a date, time or datetime. Without an explicit pattern the
// configured one is used, and date and time fall back to the datetime pattern.
func (e *Evaluator) Parse(kind, text, pattern string) (domain.Result, error) {
	res := domain.Result{Op: "parse " + kind, Input: []string{text}}

	switch kind {
	case "date":
		d, used, fallback, err := e.parseDate(text, pattern)
		if err != nil {
			return domain.Result{}, invalidInput("usecase.parse", err)
		}
		res.Value, res.Pattern, res.Fallback = d.String(), used, fallback

	case "time":
		t, used, fallback, err := e.parseTime(text, pattern)
		if err != nil {
			return domain.Result{}, invalidInput("usecase.parse", err)
		}
		res.Value, res.Pattern, res.Fallback = renderTime(t), used, fallback

	case "datetime":
		if pattern == "" {
			pattern = e.cfg.Patterns.DateTime
		}
		dt, err := localdate.ParseDateTimeWith(text, pattern)
		if err != nil {
			return domain.Result{}, invalidInput("usecase.parse", err)
		}
		res.Value, res.Pattern = renderDateTime(dt), pattern

	default:
		return domain.Result{}, invalidInput("usecase.parse",
			fmt.Errorf("unknown kind %q (expected date|time|datetime)", kind))
	}
	return res, nil
}

// Reformat parses text as a datetime, a date or a time (in that order) and
// renders it with pattern.
func (e *Evaluator) Reformat(text, pattern string) (domain.Result, error) {
	if strings.TrimSpace(pattern) == "" {
		return domain.Result{}, invalidInput("usecase.format", fmt.Errorf("pattern is required"))
	}

	var (
		out string
		err error
	)
	if dt, perr := localdate.ParseDateTimeWith(text, e.cfg.Patterns.DateTime); perr == nil {
		out, err = localdate.FormatDateTime(&dt, pattern)
	} else if d, _, _, perr := e.parseDate(text, ""); perr == nil {
		out, err = localdate.FormatDate(&d, pattern)
	} else if t, perr := localdate.ParseTimeWith(text, e.cfg.Patterns.Time); perr == nil {
		out, err = localdate.FormatTime(&t, pattern)
	} else {
		return domain.Result{}, invalidInput("usecase.format",
			fmt.Errorf("%q is not a date, time or datetime: %w", text, perr))
	}
	if err != nil {
		return domain.Result{}, invalidInput("usecase.format", err)
	}

	return domain.Result{Op: "format", Input: []string{text}, Pattern: pattern, Value: out}, nil
}

// DiffUnits lists the units accepted by Diff, smallest first.
func DiffUnits() []string {
	return []string{"millis", "seconds", "minutes", "hours", "days", "months", "years"}
}

// Diff returns end minus start in unit. Inputs are read as datetimes; clock units
// also accept two times and calendar units also accept two dates.
func (e *Evaluator) Diff(unit, start, end string) (domain.Result, error) {
	var (
		n   int64
		err error
	)

	switch unit {
	case "millis", "seconds", "minutes", "hours":
		n, err = e.diffClocked(unit, start, end)
	case "days", "months", "years":
		n, err = e.diffDated(unit, start, end)
	default:
		return domain.Result{}, invalidInput("usecase.diff",
			fmt.Errorf("unknown unit %q (expected %s)", unit, strings.Join(DiffUnits(), "|")))
	}
	if err != nil {
		return domain.Result{}, invalidInput("usecase.diff", err)
	}

	return domain.Result{
		Op:    "diff",
		Input: []string{start, end},
		Unit:  unit,
		Value: strconv.FormatInt(n, 10),
	}, nil
}

func (e *Evaluator) diffClocked(unit, start, end string) (int64, error) {
	s, serr := localdate.ParseDateTimeWith(start, e.cfg.Patterns.DateTime)
	t, terr := localdate.ParseDateTimeWith(end, e.cfg.Patterns.DateTime)
	if serr == nil && terr == nil {
		return clockedDiff(unit, s, t), nil
	}

	st, sterr := localdate.ParseTimeWith(start, e.cfg.Patterns.Time)
	et, eterr := localdate.ParseTimeWith(end, e.cfg.Patterns.Time)
	if sterr == nil && eterr == nil {
		return clockedDiff(unit, st, et), nil
	}

	if serr != nil {
		return 0, serr
	}
	return 0, terr
}

func (e *Evaluator) diffDated(unit, start, end string) (int64, error) {
	s, serr := localdate.ParseDateTimeWith(start, e.cfg.Patterns.DateTime)
	t, terr := localdate.ParseDateTimeWith(end, e.cfg.Patterns.DateTime)
	if serr == nil && terr == nil {
		return datedDiff(unit, s, t), nil
	}

	sd, _, _, err := e.parseDate(start, "")
	if err != nil {
		return 0, err
	}
	ed, _, _, err := e.parseDate(end, "")
	if err != nil {
		return 0, err
	}
	return datedDiff(unit, sd, ed), nil
}

func clockedDiff[T localdate.Clocked](unit string, start, end T) int64 {
	switch unit {
	case "millis":
		return localdate.DiffMillis(start, end)
	case "seconds":
		return localdate.DiffSeconds(start, end)
	case "minutes":
		return localdate.DiffMinutes(start, end)
	default:
		return localdate.DiffHours(start, end)
	}
}

func datedDiff[T localdate.Dated](unit string, start, end T) int64 {
	switch unit {
	case "days":
		return localdate.DiffDays(start, end)
	case "months":
		return localdate.DiffMonths(start, end)
	default:
		return localdate.DiffYears(start, end)
	}
}

var dateAdjusters = map[string]func(localdate.Date) localdate.Date{
	"first-day-of-month":      localdate.FirstDayOfMonth,
	"last-day-of-month":       localdate.LastDayOfMonth,
	"first-day-of-next-month": localdate.FirstDayOfNextMonth,
	"last-day-of-next-month":  localdate.LastDayOfNextMonth,
	"first-day-of-year":       localdate.FirstDayOfYear,
	"last-day-of-year":        localdate.LastDayOfYear,
	"first-day-of-next-year":  localdate.FirstDayOfNextYear,
	"last-day-of-next-year":   localdate.LastDayOfNextYear,
	"first-day-of-last-year":  localdate.FirstDayOfLastYear,
	"last-day-of-last-year":   localdate.LastDayOfLastYear,
}

var weekdayAdjusters = map[string]func(localdate.Date, time.Weekday) localdate.Date{
	"first-in-month":   localdate.FirstInMonth,
	"last-in-month":    localdate.LastInMonth,
	"next":             localdate.Next,
	"previous":         localdate.Previous,
	"next-or-same":     localdate.NextOrSame,
	"previous-or-same": localdate.PreviousOrSame,
}

// AdjustOps lists the operations accepted by Adjust, sorted.
func AdjustOps() []string {
	out := make([]string, 0, len(dateAdjusters)+len(weekdayAdjusters))
	for k := range dateAdjusters {
		out = append(out, k)
	}
	for k := range weekdayAdjusters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Adjust moves date with op. Weekday operations (next, previous, ...) need weekday.
func (e *Evaluator) Adjust(op, date, weekday string) (domain.Result, error) {
	byDate, plain := dateAdjusters[op]
	byWeekday, withWeekday := weekdayAdjusters[op]
	if !plain && !withWeekday {
		return domain.Result{}, invalidInput("usecase.adjust",
			fmt.Errorf("unknown operation %q (expected one of %s)", op, strings.Join(AdjustOps(), ", ")))
	}
	if plain && weekday != "" {
		return domain.Result{}, invalidInput("usecase.adjust", fmt.Errorf("%s takes no weekday", op))
	}
	if withWeekday && weekday == "" {
		return domain.Result{}, invalidInput("usecase.adjust", fmt.Errorf("%s needs a weekday", op))
	}

	d, _, _, err := e.parseDate(date, "")
	if err != nil {
		return domain.Result{}, invalidInput("usecase.adjust", err)
	}

	input := []string{date}
	var out localdate.Date
	if plain {
		out = byDate(d)
	} else {
		wd, err := localdate.ParseWeekday(weekday)
		if err != nil {
			return domain.Result{}, invalidInput("usecase.adjust", err)
		}
		input = append(input, weekday)
		out = byWeekday(d, wd)
	}

	value, err := out.Format(e.cfg.Patterns.Date)
	if err != nil {
		return domain.Result{}, invalidInput("usecase.adjust", err)
	}
	return domain.Result{Op: "adjust " + op, Input: input, Pattern: e.cfg.Patterns.Date, Value: value}, nil
}

// Leap reports whether the year of text is a leap year. text is a date or a bare year.
func (e *Evaluator) Leap(text string) (domain.Result, error) {
	res := domain.Result{Op: "leap", Input: []string{text}}

	d, _, _, err := e.parseDate(text, "")
	if err == nil {
		res.Value = strconv.FormatBool(localdate.IsLeapYear(d))
		return res, nil
	}

	year, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		return domain.Result{}, invalidInput("usecase.leap", err)
	}
	res.Value = strconv.FormatBool(localdate.IsLeap(year))
	return res, nil
}

// ResolveDate parses text as a date, or returns today when text is empty.
func (e *Evaluator) ResolveDate(text string) (localdate.Date, error) {
	if strings.TrimSpace(text) == "" {
		return localdate.TodayFrom(e.clock), nil
	}
	d, _, _, err := e.parseDate(text, "")
	if err != nil {
		return localdate.Date{}, invalidInput("usecase.resolvedate", err)
	}
	return d, nil
}

// parseDate returns the date, the pattern that matched and whether that was the fallback.
func (e *Evaluator) parseDate(text, pattern string) (localdate.Date, string, bool, error) {
	if pattern != "" {
		d, err := localdate.ParseDateWith(text, pattern)
		return d, pattern, false, err
	}

	primary, fallback := e.cfg.Patterns.Date, e.cfg.Patterns.DateTime
	d, err := localdate.ParseDateWith(text, primary)
	if err == nil {
		return d, primary, false, nil
	}
	d, ferr := localdate.ParseDateWith(text, fallback)
	if ferr != nil {
		return localdate.Date{}, fallback, false, ferr
	}

	e.log.Debug("parse.fallback", "kind", "date", "input", text, "pattern", primary, "fallback", fallback, "err", err)
	return d, fallback, true, nil
}

func (e *Evaluator) parseTime(text, pattern string) (localdate.Time, string, bool, error) {
	if pattern != "" {
		t, err := localdate.ParseTimeWith(text, pattern)
		return t, pattern, false, err
	}

	primary, fallback := e.cfg.Patterns.Time, e.cfg.Patterns.DateTime
	t, err := localdate.ParseTimeWith(text, primary)
	if err == nil {
		return t, primary, false, nil
	}
	t, ferr := localdate.ParseTimeWith(text, fallback)
	if ferr != nil {
		return localdate.Time{}, fallback, false, ferr
	}

	e.log.Debug("parse.fallback", "kind", "time", "input", text, "pattern", primary, "fallback", fallback, "err", err)
	return t, fallback, true, nil
}

func renderTime(t localdate.Time) string {
	if t.Nanosecond() == 0 {
		return t.String()
	}
	s, _ := t.Format(nanoTimePattern)
	return s
}

func renderDateTime(dt localdate.DateTime) string {
	if dt.Nanosecond() == 0 {
		return dt.String()
	}
	s, _ := dt.Format(nanoDateTimePattern)
	return s
}

func invalidInput(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Err: err}
}
