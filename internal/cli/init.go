package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/infra/configinit"
	"github.com/wenzisay/localdate/internal/infra/logger"
	"github.com/wenzisay/localdate/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter localdate.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := strings.TrimSpace(path)
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}

			uc := usecase.NewInitConfig(configinit.NewInitializer(), logger.L())
			res, err := uc.Execute(dir, force)
			if err != nil {
				return err
			}

			format := domain.FormatPretty
			if f, ok := domain.ParseOutputFormat(opts.format); ok {
				format = f
			}
			return printResult(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to write localdate.yaml into (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing localdate.yaml")
	return c
}
