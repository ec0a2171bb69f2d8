package configfinder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/pkg/localdate"
)

// LoadConfig loads the localdate.yaml at path and applies defaults.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// apply overlays parsed values on top of defaults.
func apply(cfg *domain.Config, y yamlConfig) error {
	p := y.LocalDate.Patterns
	for _, f := range []struct {
		key string
		in  string
		dst *string
	}{
		{"patterns.date", p.Date, &cfg.Patterns.Date},
		{"patterns.time", p.Time, &cfg.Patterns.Time},
		{"patterns.datetime", p.DateTime, &cfg.Patterns.DateTime},
	} {
		if f.in == "" {
			continue
		}
		if err := localdate.ValidatePattern(f.in); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = f.in
	}

	if s := y.LocalDate.Output.Format; s != "" {
		format, ok := domain.ParseOutputFormat(s)
		if !ok {
			return fmt.Errorf("output.format: unsupported format %q (expected pretty|json)", s)
		}
		cfg.Output.Format = format
	}

	if s := y.LocalDate.Calendar.WeekStart; s != "" {
		wd, err := localdate.ParseWeekday(s)
		if err != nil {
			return fmt.Errorf("calendar.week_start: %w", err)
		}
		cfg.Calendar.WeekStart = wd
	}
	return nil
}

type yamlConfig struct {
	LocalDate struct {
		Patterns struct {
			Date     string `yaml:"date"`
			Time     string `yaml:"time"`
			DateTime string `yaml:"datetime"`
		} `yaml:"patterns"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Calendar struct {
			WeekStart string `yaml:"week_start"`
		} `yaml:"calendar"`
	} `yaml:"localdate"`
}
