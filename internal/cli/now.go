package cli

import (
	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/usecase"
)

func nowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "now [date|time|time-no-nano|datetime]",
		Short:     "Print the current local date, time or datetime",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"date", "time", "time-no-nano", "datetime"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := ""
			if len(args) == 1 {
				kind = args[0]
			}
			return evaluate(cmd, opts, func(e *usecase.Evaluator) (domain.Result, error) {
				return e.Now(kind)
			})
		},
	}
}
