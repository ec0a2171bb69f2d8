package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/infra/configfinder"
	"github.com/wenzisay/localdate/internal/infra/logger"
	"github.com/wenzisay/localdate/internal/usecase"
)

type rootOptions struct {
	debug      bool
	configPath string
	format     string
	logFile    string

	cleanup func() error
}

// session is the per-invocation state shared by every command.
type session struct {
	cfg        domain.Config
	configPath string
	format     domain.OutputFormat
	eval       *usecase.Evaluator
}

func loadSession(opts *rootOptions) (*session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, path, err := configfinder.NewFinder().Resolve(wd, opts.configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.L().Debug("config.loaded", "path", path)
	} else {
		logger.L().Debug("config.defaults", "cwd", wd)
	}

	format := cfg.Output.Format
	if opts.format != "" {
		f, ok := domain.ParseOutputFormat(opts.format)
		if !ok {
			return nil, &domain.OpError{
				Op:   "cli.format",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("unsupported format %q (expected pretty|json)", opts.format),
			}
		}
		format = f
	}

	return &session{
		cfg:        cfg,
		configPath: path,
		format:     format,
		eval:       usecase.NewEvaluator(cfg, usecase.WithLogger(logger.L())),
	}, nil
}

// evaluate loads the session, runs fn and prints its result.
func evaluate(cmd *cobra.Command, opts *rootOptions, fn func(*usecase.Evaluator) (domain.Result, error)) error {
	s, err := loadSession(opts)
	if err != nil {
		return err
	}
	res, err := fn(s.eval)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), res, s.format)
}
