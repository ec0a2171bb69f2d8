package tui

import (
	"log/slog"
	"time"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/ports"
	"github.com/wenzisay/localdate/internal/usecase"
	"github.com/wenzisay/localdate/pkg/localdate"
)

type Deps struct {
	ConfigLocator ports.ConfigLocator
	InitConfigUC  interface {
		Execute(dir string, force bool) (domain.Result, error)
	}

	Evaluator *usecase.Evaluator
	Start     localdate.Date
	WeekStart time.Weekday

	Logger *slog.Logger
	// LogPath is shown in the header so debug output can be found after the
	// alternate screen closes.
	LogPath string
}
