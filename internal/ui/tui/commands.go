package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdRefreshConfig(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return configRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.ConfigLocator == nil {
			return configRefreshedMsg{cwd: wd, err: errors.New("ConfigLocator is nil")}
		}

		root, findErr := deps.ConfigLocator.FindRoot(wd)
		if findErr != nil {
			return configRefreshedMsg{cwd: wd, err: findErr}
		}
		return configRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

// cmdInitConfigHere writes localdate.yaml into the working directory, keeping an existing one.
func cmdInitConfigHere(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return initConfigDoneMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.InitConfigUC == nil {
			return initConfigDoneMsg{dir: wd, err: errors.New("InitConfigUC is nil")}
		}

		res, err := deps.InitConfigUC.Execute(wd, false)
		return initConfigDoneMsg{dir: wd, status: res.Value, err: err}
	}
}
