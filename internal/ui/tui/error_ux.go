package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/pkg/localdate"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns err into a one-line message for the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	// Library errors carry the input and pattern, which is what users need to see.
	var le *localdate.Error
	if errors.As(err, &le) {
		return libraryMessage(le)
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "configfinder") {
				if oe.Path != "" {
					return "Config not found: " + oe.Path
				}
				return "Config not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" && looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if oe.Err != nil {
				return "Invalid config at " + base + ": " + oe.Err.Error()
			}
			return "Invalid config"

		case domain.KindInvalidInput:
			if oe.Err != nil {
				return oe.Err.Error()
			}
			return "Invalid input"

		default:
			return "Unexpected error (run with --debug)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	// cobra argument and flag errors are already user-facing
	return err.Error()
}

func libraryMessage(le *localdate.Error) string {
	cause := ""
	if le.Err != nil {
		cause = ": " + le.Err.Error()
	}

	switch le.Kind {
	case localdate.KindParse:
		if le.Pattern != "" {
			return fmt.Sprintf("Cannot parse %q with pattern %q%s", le.Input, le.Pattern, cause)
		}
		return fmt.Sprintf("Cannot parse %q%s", le.Input, cause)
	case localdate.KindFormat:
		return fmt.Sprintf("Invalid pattern %q%s", le.Pattern, cause)
	case localdate.KindInvalidDate:
		return fmt.Sprintf("Invalid date %s%s", le.Input, cause)
	case localdate.KindInvalidTime:
		return fmt.Sprintf("Invalid time %s%s", le.Input, cause)
	}
	return le.Error()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
