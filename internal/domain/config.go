package domain

import (
	"time"

	"github.com/wenzisay/localdate/pkg/localdate"
)

// Config represents the localdate tool configuration loaded from localdate.yaml.
type Config struct {
	Patterns PatternsConfig
	Output   OutputConfig
	Calendar CalendarConfig
}

// PatternsConfig holds the patterns used when a command is given no --pattern.
type PatternsConfig struct {
	Date     string
	Time     string
	DateTime string
}

type OutputConfig struct {
	Format OutputFormat
}

type CalendarConfig struct {
	WeekStart time.Weekday
}

type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
)

// ParseOutputFormat maps a flag or config value to an OutputFormat. Empty means pretty.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch OutputFormat(s) {
	case FormatPretty, "":
		return FormatPretty, true
	case FormatJSON:
		return FormatJSON, true
	}
	return "", false
}

// DefaultConfig provides sane defaults if localdate.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Patterns: PatternsConfig{
			Date:     localdate.DatePattern,
			Time:     localdate.TimePattern,
			DateTime: localdate.DateTimePattern,
		},
		Output:   OutputConfig{Format: FormatPretty},
		Calendar: CalendarConfig{WeekStart: time.Monday},
	}
}
