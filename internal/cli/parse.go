package cli

import (
	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/usecase"
)

const patternHelp = `Patterns use letters: yyyy year, MM month (MMM/MMMM names), dd day,
D day of year, EEE/EEEE weekday, HH hour, hh hour of am/pm, a AM/PM,
mm minute, ss second, SSS fraction. Text in '...' is literal.`

func parseCmd(opts *rootOptions) *cobra.Command {
	var pattern string

	c := &cobra.Command{
		Use:   "parse {date|time|datetime} TEXT",
		Short: "Parse TEXT and print it in the canonical form",
		Long: `Parse TEXT as a date, time or datetime.

Without --pattern the configured pattern is used; date and time then fall back
to the datetime pattern, so "2018-11-01 11:11:11" parses as a date.

` + patternHelp,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"date", "time", "datetime"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd, opts, func(e *usecase.Evaluator) (domain.Result, error) {
				return e.Parse(args[0], args[1], pattern)
			})
		},
	}

	c.Flags().StringVarP(&pattern, "pattern", "p", "", "Pattern to parse with (default from config)")
	return c
}

func formatCmd(opts *rootOptions) *cobra.Command {
	var pattern string

	c := &cobra.Command{
		Use:   "format TEXT",
		Short: "Reformat a datetime, date or time with --pattern",
		Long: `Parse TEXT as a datetime, a date or a time (in that order, using the
configured patterns) and render it with --pattern.

` + patternHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd, opts, func(e *usecase.Evaluator) (domain.Result, error) {
				return e.Reformat(args[0], pattern)
			})
		},
	}

	c.Flags().StringVarP(&pattern, "pattern", "p", "", "Output pattern (required)")
	_ = c.MarkFlagRequired("pattern")
	return c
}
