package usecase

import (
	"log/slog"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
	log         *slog.Logger
}

func NewInitConfig(initializer ports.ConfigInitializer, log *slog.Logger) *InitConfig {
	if log == nil {
		log = slog.Default()
	}
	return &InitConfig{initializer: initializer, log: log}
}

// Execute writes the starter configuration into dir.
func (uc *InitConfig) Execute(dir string, force bool) (domain.Result, error) {
	path, written, err := uc.initializer.Init(dir, force)
	if err != nil {
		return domain.Result{}, err
	}

	uc.log.Debug("config.init", "path", path, "written", written, "force", force)

	status := "created"
	if !written {
		status = "exists (use --force to overwrite)"
	}
	return domain.Result{Op: "init", Input: []string{path}, Value: status}, nil
}
