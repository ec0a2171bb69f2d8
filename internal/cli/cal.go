package cli

import (
	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/infra/configfinder"
	"github.com/wenzisay/localdate/internal/infra/configinit"
	"github.com/wenzisay/localdate/internal/infra/logger"
	"github.com/wenzisay/localdate/internal/ui/tui"
	"github.com/wenzisay/localdate/internal/usecase"
)

func calCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cal [DATE]",
		Short: "Browse a month calendar interactively",
		Long: `Open a month calendar on DATE (default: today).

Use --debug with --log-file to keep logs off the screen while the calendar runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(opts)
			if err != nil {
				return err
			}

			text := ""
			if len(args) == 1 {
				text = args[0]
			}
			start, err := s.eval.ResolveDate(text)
			if err != nil {
				return err
			}

			log := logger.L()
			log.Debug("calendar.start", "date", start.String(), "week_start", s.cfg.Calendar.WeekStart.String())

			return tui.Run(tui.Deps{
				ConfigLocator: configfinder.NewFinder(),
				InitConfigUC:  usecase.NewInitConfig(configinit.NewInitializer(), log),
				Evaluator:     s.eval,
				Start:         start,
				WeekStart:     s.cfg.Calendar.WeekStart,
				Logger:        log,
				LogPath:       logger.Path(),
			})
		},
	}
}
