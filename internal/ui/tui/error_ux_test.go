package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/pkg/localdate"
)

func TestUserMessage(t *testing.T) {
	_, parseErr := localdate.ParseDateTime("2018-11-01")
	_, formatErr := localdate.MustDateOf(2018, 11, 1).Format("HH")
	_, dateErr := localdate.DateOf(2018, 2, 30)

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"parse", parseErr, `Cannot parse "2018-11-01" with pattern "yyyy-MM-dd HH:mm:ss"`},
		{"wrapped parse", &domain.OpError{Op: "usecase.parse", Kind: domain.KindInvalidInput, Err: parseErr}, "Cannot parse"},
		{"format", formatErr, `Invalid pattern "HH"`},
		{"invalid date", dateErr, "Invalid date 2018-02-30"},
		{"config not found", &domain.OpError{Op: "configfinder.loadconfig", Kind: domain.KindNotFound, Path: "/x/localdate.yaml"}, "Config not found: /x/localdate.yaml"},
		{"yaml line", &domain.OpError{Op: "configfinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/x/localdate.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at localdate.yaml line 3"},
		{"bad config value", &domain.OpError{Op: "configfinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/x/localdate.yaml", Err: errors.New("output.format: unsupported format \"xml\"")}, "Invalid config at localdate.yaml: output.format"},
		{"invalid input", &domain.OpError{Op: "usecase.diff", Kind: domain.KindInvalidInput, Err: errors.New("unknown unit \"weeks\"")}, "unknown unit"},
		{"execution", &domain.OpError{Op: "configinit.init", Kind: domain.KindExecution, Err: errors.New("disk full")}, "Unexpected error"},
		{"plain", errors.New("accepts 2 arg(s), received 1"), "accepts 2 arg(s), received 1"},
	}
	for _, c := range cases {
		got := UserMessage(c.err)
		if c.want == "" {
			if got != "" {
				t.Errorf("%s: expected empty message, got %q", c.name, got)
			}
			continue
		}
		if !strings.Contains(got, c.want) {
			t.Errorf("%s: expected %q in %q", c.name, c.want, got)
		}
	}
}
