package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/usecase"
)

func diffCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff UNIT START END",
		Short: "Print END minus START in whole units",
		Long: `Print END minus START, truncated toward zero.

Units: ` + strings.Join(usecase.DiffUnits(), ", ") + `.
Inputs are datetimes. Clock units also take two times; calendar units also
take two dates.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: usecase.DiffUnits(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd, opts, func(e *usecase.Evaluator) (domain.Result, error) {
				return e.Diff(args[0], args[1], args[2])
			})
		},
	}
}

func adjustCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust OP DATE [WEEKDAY]",
		Short: "Move DATE to a month/year boundary or a weekday",
		Long: `Move DATE with OP.

Operations: ` + strings.Join(usecase.AdjustOps(), ", ") + `.
next, previous, next-or-same, previous-or-same, first-in-month and
last-in-month take a WEEKDAY (monday or mon, any case).`,
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: usecase.AdjustOps(),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday := ""
			if len(args) == 3 {
				weekday = args[2]
			}
			return evaluate(cmd, opts, func(e *usecase.Evaluator) (domain.Result, error) {
				return e.Adjust(args[0], args[1], weekday)
			})
		},
	}
}

func leapCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leap DATE|YEAR",
		Short: "Report whether the year is a leap year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd, opts, func(e *usecase.Evaluator) (domain.Result, error) {
				return e.Leap(args[0])
			})
		},
	}
}
