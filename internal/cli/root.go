package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/infra/logger"
	"github.com/wenzisay/localdate/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", tui.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "localdate",
		Short:         "Parse, format and navigate zone-less dates and times",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				File:   opts.logFile,
				Debug:  opts.debug,
				JSON:   opts.format == "json",
			})
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			opts.cleanup = cleanup
			logger.L().Debug("command.start", "cmd", cmd.CommandPath())
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.cleanup != nil {
				_ = opts.cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "with --debug, append logs to this file instead of stderr")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to localdate.yaml (default: nearest one upward)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "", "Output format: pretty|json (default from config)")

	cmd.AddCommand(
		nowCmd(opts),
		parseCmd(opts),
		formatCmd(opts),
		diffCmd(opts),
		adjustCmd(opts),
		leapCmd(opts),
		initCmd(opts),
		calCmd(opts),
		versionCmd(),
	)
	return cmd
}
