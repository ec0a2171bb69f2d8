package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/usecase"
	"github.com/wenzisay/localdate/pkg/localdate"
)

type fakeInitConfig struct {
	dir string
	err error
}

func (f *fakeInitConfig) Execute(dir string, _ bool) (domain.Result, error) {
	f.dir = dir
	if f.err != nil {
		return domain.Result{}, f.err
	}
	return domain.Result{Op: "init", Value: "created"}, nil
}

func newTestModel(t *testing.T, start localdate.Date) model {
	t.Helper()
	clock := localdate.ClockFunc(func() time.Time {
		return time.Date(2018, 11, 1, 9, 0, 0, 0, time.Local)
	})
	return newModel(Deps{
		Evaluator: usecase.NewEvaluator(domain.DefaultConfig(), usecase.WithClock(clock)),
		Start:     start,
		WeekStart: time.Monday,
	})
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		mm, ok := next.(model)
		if !ok {
			t.Fatalf("expected model, got %T", next)
		}
		m = mm
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_DefaultsToToday(t *testing.T) {
	m := newTestModel(t, localdate.Date{})
	if m.selected != localdate.MustDateOf(2018, 11, 1) || m.today != m.selected {
		t.Fatalf("expected today from clock, got selected=%s today=%s", m.selected, m.today)
	}
}

func TestCalendarNavigation(t *testing.T) {
	start := localdate.MustDateOf(2020, 1, 31)

	cases := []struct {
		name string
		keys []tea.KeyMsg
		want localdate.Date
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, localdate.MustDateOf(2020, 2, 1)},
		{"left", []tea.KeyMsg{runes("h")}, localdate.MustDateOf(2020, 1, 30)},
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, localdate.MustDateOf(2020, 2, 7)},
		{"up", []tea.KeyMsg{runes("k")}, localdate.MustDateOf(2020, 1, 24)},
		{"next month clamps", []tea.KeyMsg{runes("]")}, localdate.MustDateOf(2020, 2, 29)},
		{"previous month", []tea.KeyMsg{{Type: tea.KeyPgUp}}, localdate.MustDateOf(2019, 12, 31)},
		{"next year", []tea.KeyMsg{runes("}")}, localdate.MustDateOf(2021, 1, 31)},
		{"today", []tea.KeyMsg{runes("}"), runes("t")}, localdate.MustDateOf(2018, 11, 1)},
	}
	for _, c := range cases {
		m := press(t, newTestModel(t, start), c.keys...)
		if m.selected != c.want {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, m.selected)
		}
	}
}

func TestJumpMenu(t *testing.T) {
	m := press(t, newTestModel(t, localdate.MustDateOf(2020, 2, 14)), runes("m"))
	if m.scr != screenJump {
		t.Fatalf("expected jump screen")
	}

	// Item 2 is "Last day of month".
	m.jumps.Select(2)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.scr != screenCalendar {
		t.Fatalf("expected calendar screen after jump")
	}
	if m.selected != localdate.MustDateOf(2020, 2, 29) {
		t.Fatalf("expected 2020-02-29, got %s", m.selected)
	}

	m = press(t, m, runes("m"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenCalendar || m.selected != localdate.MustDateOf(2020, 2, 29) {
		t.Fatalf("expected esc to return without moving")
	}
}

func TestJumpItems_WeekdayJumpsUseWeekStart(t *testing.T) {
	items := jumpItems(localdate.MustDateOf(2018, 11, 1), time.Monday)
	found := false
	for _, it := range items {
		ji := it.(jumpItem)
		if ji.title == "Next Monday" {
			found = true
			if got := ji.jump(localdate.MustDateOf(2018, 11, 1)); got != localdate.MustDateOf(2018, 11, 5) {
				t.Fatalf("expected 2018-11-05, got %s", got)
			}
		}
	}
	if !found {
		t.Fatalf("expected a Next Monday item")
	}
}

func TestGotoDate(t *testing.T) {
	m := press(t, newTestModel(t, localdate.MustDateOf(2018, 11, 1)), runes("g"))
	if m.scr != screenGoto {
		t.Fatalf("expected goto screen")
	}

	m.input.SetValue("2020-02-30")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenGoto {
		t.Fatalf("expected to stay on goto screen after a bad date")
	}
	if !strings.Contains(m.toast, "Cannot parse") {
		t.Fatalf("expected parse message, got %q", m.toast)
	}

	m.input.SetValue("2020-02-29 10:00:00")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenCalendar || m.selected != localdate.MustDateOf(2020, 2, 29) {
		t.Fatalf("expected 2020-02-29 on calendar, got scr=%d selected=%s", m.scr, m.selected)
	}
	if m.toast != "" {
		t.Fatalf("expected toast cleared, got %q", m.toast)
	}
}

func TestInitConfigMessages(t *testing.T) {
	m := newTestModel(t, localdate.MustDateOf(2018, 11, 1))

	next, cmd := m.Update(initConfigDoneMsg{status: "created"})
	m = next.(model)
	if m.toast != "localdate.yaml created" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if cmd == nil {
		t.Fatalf("expected a config refresh command")
	}

	next, _ = m.Update(initConfigDoneMsg{err: &domain.OpError{Op: "configinit.init", Kind: domain.KindExecution, Err: errors.New("denied")}})
	m = next.(model)
	if !strings.Contains(m.toast, "Unexpected error") {
		t.Fatalf("unexpected toast %q", m.toast)
	}

	next, _ = m.Update(configRefreshedMsg{found: true, root: "/proj"})
	m = next.(model)
	if !m.configFound || !strings.Contains(m.View(), "Config: /proj") {
		t.Fatalf("expected config banner")
	}
}

func TestCmdInitConfigHere_UsesWorkingDir(t *testing.T) {
	fake := &fakeInitConfig{}
	msg := cmdInitConfigHere(Deps{InitConfigUC: fake})()

	done, ok := msg.(initConfigDoneMsg)
	if !ok {
		t.Fatalf("expected initConfigDoneMsg, got %T", msg)
	}
	if done.err != nil || done.status != "created" {
		t.Fatalf("unexpected msg %+v", done)
	}
	if fake.dir == "" || fake.dir != done.dir {
		t.Fatalf("expected initializer to receive the working dir, got %q", fake.dir)
	}
}

func TestCmdRefreshConfig_NilLocator(t *testing.T) {
	msg := cmdRefreshConfig(Deps{})().(configRefreshedMsg)
	if msg.found || msg.err == nil {
		t.Fatalf("expected not found with error, got %+v", msg)
	}
}

func TestSafeModel_DelegatesToModel(t *testing.T) {
	s := wrapSafe(newTestModel(t, localdate.MustDateOf(2020, 1, 31)), nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRight})
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.selected != localdate.MustDateOf(2020, 2, 1) {
		t.Fatalf("expected selection to move, got %s", sm.m.selected)
	}
	if !strings.Contains(sm.View(), "February 2020") {
		t.Fatalf("expected calendar view")
	}
}

func TestView_ShowsLogPath(t *testing.T) {
	m := newTestModel(t, localdate.MustDateOf(2018, 11, 1))
	if strings.Contains(m.View(), "Logs:") {
		t.Fatalf("expected no log banner without a log file")
	}

	m.deps.LogPath = "/tmp/localdate.log"
	if !strings.Contains(m.View(), "Logs: /tmp/localdate.log") {
		t.Fatalf("expected log banner")
	}
}
