package localdate

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseDate_FallsBackToDateTimePattern(t *testing.T) {
	cases := []struct {
		input string
		want  Date
	}{
		{"2018-11-01", MustDateOf(2018, 11, 1)},
		{"2018-11-01 11:11:11", MustDateOf(2018, 11, 1)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestParseDate_BothAttemptsFail(t *testing.T) {
	for _, in := range []string{"2018/11/01", "2018-02-30", "2018-11-01T11:11:11", ""} {
		_, err := ParseDate(in)
		if !IsKind(err, KindParse) {
			t.Errorf("ParseDate(%q): expected KindParse, got %v", in, err)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("ParseDate(%q): expected errors.Is ErrParse", in)
		}
	}
}

func TestParseDateWith_CustomPattern(t *testing.T) {
	cases := []struct {
		input   string
		pattern string
		want    Date
	}{
		{"2018年11月01日", "yyyy年MM月dd日", MustDateOf(2018, 11, 1)},
		{"20181101", "yyyyMMdd", MustDateOf(2018, 11, 1)},
		{"18-3-5", "yy-M-d", MustDateOf(2018, 3, 5)},
		{"1/2/2006", "M/d/yyyy", MustDateOf(2006, 1, 2)},
		{"02-Jan-2006", "dd-MMM-yyyy", MustDateOf(2006, 1, 2)},
		{"02-JAN-2006", "dd-MMM-yyyy", MustDateOf(2006, 1, 2)},
		{"Thursday, November 1, 2018", "EEEE, MMMM d, yyyy", MustDateOf(2018, 11, 1)},
		{"2020-366", "yyyy-DDD", MustDateOf(2020, 12, 31)},
		{"2018-11-01 11:11:11", "", MustDateOf(2018, 11, 1)},
		{"2018-11-01 23:59", "yyyy-MM-dd HH:mm", MustDateOf(2018, 11, 1)},
	}
	for _, c := range cases {
		got, err := ParseDateWith(c.input, c.pattern)
		if err != nil {
			t.Errorf("ParseDateWith(%q, %q): %v", c.input, c.pattern, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDateWith(%q, %q) = %s, want %s", c.input, c.pattern, got, c.want)
		}
	}
}

func TestParseDateWith_Mismatch(t *testing.T) {
	cases := []struct {
		input   string
		pattern string
	}{
		{"Friday, November 1, 2018", "EEEE, MMMM d, yyyy"},
		{"2021-366", "yyyy-DDD"},
		{"2018-11", "yyyy-MM-dd"},
		{"2018-11-01x", "yyyy-MM-dd"},
		{"2018-13-01", "yyyy-MM-dd"},
		{"11:11:11", "HH:mm:ss"},
	}
	for _, c := range cases {
		_, err := ParseDateWith(c.input, c.pattern)
		if !IsKind(err, KindParse) {
			t.Errorf("ParseDateWith(%q, %q): expected KindParse, got %v", c.input, c.pattern, err)
		}
	}
}

func TestParseDateWith_BadPatternIsFormatError(t *testing.T) {
	_, err := ParseDateWith("2018-11-01", "yyyy-bb-dd")
	if !IsKind(err, KindFormat) {
		t.Fatalf("expected KindFormat, got %v", err)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2018-11-01 11:11:11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := MustDateOf(2018, 11, 1).At(mustTime(t, 11, 11, 11, 0))
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestParseDateTime_NotADate(t *testing.T) {
	_, err := ParseDateTime("not-a-date")
	if err == nil {
		t.Fatalf("expected error")
	}
	var le *Error
	if !errors.As(err, &le) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if le.Kind != KindParse || le.Input != "not-a-date" || le.Pattern != DateTimePattern {
		t.Fatalf("unexpected error fields: %+v", le)
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Fatalf("expected input in message, got %v", err)
	}
}

func TestParseDateTime_DateOnlyDoesNotFallBack(t *testing.T) {
	if _, err := ParseDateTime("2018-11-01"); !IsKind(err, KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
}

func TestParseDateTimeWith(t *testing.T) {
	cases := []struct {
		input   string
		pattern string
		want    string
	}{
		{"2018-11-01T11:11:11.123", "yyyy-MM-dd'T'HH:mm:ss.SSS", "2018-11-01 11:11:11.123000000"},
		{"20181101111111", "yyyyMMddHHmmss", "2018-11-01 11:11:11.000000000"},
		{"2018-11-01 01:05 PM", "yyyy-MM-dd hh:mm a", "2018-11-01 13:05:00.000000000"},
		{"2018-11-01 12:00 am", "yyyy-MM-dd hh:mm a", "2018-11-01 00:00:00.000000000"},
		{"2018-11-01 24:00", "yyyy-MM-dd kk:mm", "2018-11-01 00:00:00.000000000"},
		{"2018-11-01 11:11:11", "", "2018-11-01 11:11:11.000000000"},
	}
	for _, c := range cases {
		got, err := ParseDateTimeWith(c.input, c.pattern)
		if err != nil {
			t.Errorf("ParseDateTimeWith(%q, %q): %v", c.input, c.pattern, err)
			continue
		}
		s, _ := got.Format("yyyy-MM-dd HH:mm:ss.SSSSSSSSS")
		if s != c.want {
			t.Errorf("ParseDateTimeWith(%q, %q) = %s, want %s", c.input, c.pattern, s, c.want)
		}
	}
}

func TestParseDateTimeWith_TwelveHourNeedsMarker(t *testing.T) {
	_, err := ParseDateTimeWith("2018-11-01 01:05", "yyyy-MM-dd hh:mm")
	if !IsKind(err, KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "am-pm") {
		t.Fatalf("expected am-pm in message, got %v", err)
	}
}

func TestParseTime_FallsBackToDateTimePattern(t *testing.T) {
	cases := []string{"11:11:11", "2018-11-01 11:11:11"}
	for _, in := range cases {
		got, err := ParseTime(in)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", in, err)
		}
		if got != mustTime(t, 11, 11, 11, 0) {
			t.Fatalf("ParseTime(%q) = %s, want 11:11:11", in, got)
		}
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, in := range []string{"25:00:00", "11:60:00", "11-11-11", "2018-11-01"} {
		if _, err := ParseTime(in); !IsKind(err, KindParse) {
			t.Errorf("ParseTime(%q): expected KindParse, got %v", in, err)
		}
	}
}

func TestParseTimeWith(t *testing.T) {
	got, err := ParseTimeWith("11:11", "HH:mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != mustTime(t, 11, 11, 0, 0) {
		t.Fatalf("expected 11:11:00, got %s", got)
	}

	if _, err := ParseTimeWith("2018-11-01 11:11:11", ""); !IsKind(err, KindParse) {
		t.Fatalf("expected no fallback with explicit TimeWith, got %v", err)
	}
}

func TestFormat_DateTime(t *testing.T) {
	dt := MustDateOf(2018, 11, 1).At(mustTime(t, 13, 5, 9, 123_456_789))
	cases := []struct {
		pattern string
		want    string
	}{
		{"", "2018-11-01 13:05:09"},
		{DateTimePattern, "2018-11-01 13:05:09"},
		{"yyyy年MM月dd日", "2018年11月01日"},
		{"yyyy-MM-dd'T'HH:mm:ss.SSS", "2018-11-01T13:05:09.123"},
		{"EEEE, MMMM d, yyyy", "Thursday, November 1, 2018"},
		{"EEE d MMM yy", "Thu 1 Nov 18"},
		{"h:mm a", "1:05 PM"},
		{"KK:mm", "01:05"},
		{"k", "13"},
		{"h 'o''clock' a", "1 o'clock PM"},
		{"''yyyy''", "'2018'"},
		{"D", "305"},
		{"n", "123456789"},
		{"S", "1"},
	}
	for _, c := range cases {
		got, err := FormatDateTime(&dt, c.pattern)
		if err != nil {
			t.Errorf("FormatDateTime(%q): %v", c.pattern, err)
			continue
		}
		if got != c.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestFormat_NilValuesYieldEmpty(t *testing.T) {
	for _, p := range []string{"", DateTimePattern, "yyyy-bb", "'"} {
		s, err := FormatDateTime(nil, p)
		if err != nil || s != "" {
			t.Errorf("FormatDateTime(nil, %q) = %q, %v; want empty, nil", p, s, err)
		}
		s, err = FormatDate(nil, p)
		if err != nil || s != "" {
			t.Errorf("FormatDate(nil, %q) = %q, %v; want empty, nil", p, s, err)
		}
		s, err = FormatTime(nil, p)
		if err != nil || s != "" {
			t.Errorf("FormatTime(nil, %q) = %q, %v; want empty, nil", p, s, err)
		}
	}
}

func TestFormat_DefaultsPerType(t *testing.T) {
	d := MustDateOf(2018, 11, 1)
	if s, _ := FormatDate(&d, ""); s != "2018-11-01" {
		t.Fatalf("expected date default, got %q", s)
	}
	tm := mustTime(t, 8, 0, 5, 0)
	if s, _ := FormatTime(&tm, ""); s != "08:00:05" {
		t.Fatalf("expected time default, got %q", s)
	}
}

func TestFormat_InvalidPatterns(t *testing.T) {
	dt := MustDateOf(2018, 11, 1).At(mustTime(t, 11, 11, 11, 0))
	cases := []string{
		"yyyy-MM-dd bb",
		"MMMMM",
		"ddd",
		"aa",
		"'unterminated",
		"yyyy[MM]",
		"yyyy#",
		"SSSSSSSSSS",
	}
	for _, p := range cases {
		_, err := dt.Format(p)
		if !IsKind(err, KindFormat) {
			t.Errorf("Format(%q): expected KindFormat, got %v", p, err)
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Format(%q): expected errors.Is ErrFormat", p)
		}
		if err := ValidatePattern(p); !IsKind(err, KindFormat) {
			t.Errorf("ValidatePattern(%q): expected KindFormat, got %v", p, err)
		}
	}
}

func TestFormat_FieldMissingFromValue(t *testing.T) {
	d := MustDateOf(2018, 11, 1)
	if _, err := d.Format("yyyy-MM-dd HH:mm"); !IsKind(err, KindFormat) {
		t.Fatalf("expected KindFormat for hours on a Date, got %v", err)
	}
	tm := mustTime(t, 11, 0, 0, 0)
	if _, err := tm.Format("yyyy"); !IsKind(err, KindFormat) {
		t.Fatalf("expected KindFormat for year on a Time, got %v", err)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	patterns := []string{
		"yyyy-MM-dd",
		"yyyyMMdd",
		"dd/MM/yyyy",
		"d MMMM yyyy",
		"EEE, dd MMM yyyy",
		"yyyy-DDD",
		"yyyy年MM月dd日",
		"'day' d 'of' M, yyyy",
	}
	dates := []Date{
		MustDateOf(2018, 11, 1),
		MustDateOf(2020, 2, 29),
		MustDateOf(1999, 12, 31),
		MustDateOf(2000, 1, 1),
		MustDateOf(1000, 6, 15),
	}
	for _, p := range patterns {
		for _, d := range dates {
			s, err := d.Format(p)
			if err != nil {
				t.Fatalf("Format(%s, %q): %v", d, p, err)
			}
			back, err := ParseDateWith(s, p)
			if err != nil {
				t.Fatalf("ParseDateWith(%q, %q): %v", s, p, err)
			}
			if back != d {
				t.Fatalf("round trip %q with %q: got %s, want %s", s, p, back, d)
			}
		}
	}
}

func TestValidatePattern_Defaults(t *testing.T) {
	for _, p := range []string{DateTimePattern, DatePattern, TimePattern} {
		if err := ValidatePattern(p); err != nil {
			t.Fatalf("ValidatePattern(%q): %v", p, err)
		}
	}
	if err := ValidatePattern(""); !IsKind(err, KindFormat) {
		t.Fatalf("expected empty pattern to be rejected, got %v", err)
	}
}

func TestLayoutCache_ConcurrentUse(t *testing.T) {
	dt := MustDateOf(2018, 11, 1).At(mustTime(t, 11, 11, 11, 0))
	patterns := []string{"yyyy", "MM", "dd", "HH", "mm", "ss", "yyyy/MM/dd", "EEEE"}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if _, err := dt.Format(p); err != nil {
				errs <- err
			}
			if _, err := ParseDateWith("2018/11/01", "yyyy/MM/dd"); err != nil {
				errs <- err
			}
		}(patterns[i%len(patterns)])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"monday": time.Monday,
		"Mon":    time.Monday,
		" SUN ":  time.Sunday,
		"friday": time.Friday,
	}
	for in, want := range cases {
		got, err := ParseWeekday(in)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseWeekday(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseWeekday("someday"); !IsKind(err, KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
}
