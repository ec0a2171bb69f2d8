package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wenzisay/localdate/internal/domain"
	"github.com/wenzisay/localdate/internal/usecase"
	"github.com/wenzisay/localdate/pkg/localdate"
)

type screen int

const (
	screenCalendar screen = iota
	screenJump
	screenGoto
)

type jumpItem struct {
	title string
	desc  string
	jump  func(localdate.Date) localdate.Date
}

func (j jumpItem) Title() string       { return j.title }
func (j jumpItem) Description() string { return j.desc }
func (j jumpItem) FilterValue() string { return j.title }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr      screen
	selected localdate.Date
	today    localdate.Date
	jumps    list.Model
	input    textinput.Model
	toast    string

	configFound bool
	configRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Evaluator == nil {
		deps.Evaluator = usecase.NewEvaluator(domain.DefaultConfig())
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	today, _ := deps.Evaluator.ResolveDate("")
	selected := deps.Start
	if selected == (localdate.Date{}) {
		selected = today
	}

	l := list.New(jumpItems(today, deps.WeekStart), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Jump to"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = deps.Evaluator.Config().Patterns.Date
	in.CharLimit = 64

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		log:      log,
		scr:      screenCalendar,
		selected: selected,
		today:    today,
		jumps:    l,
		input:    in,
	}
}

func jumpItems(today localdate.Date, ws time.Weekday) []list.Item {
	name := ws.String()
	return []list.Item{
		jumpItem{"Today", today.String(), func(localdate.Date) localdate.Date { return today }},
		jumpItem{"First day of month", "FirstDayOfMonth", localdate.FirstDayOfMonth},
		jumpItem{"Last day of month", "LastDayOfMonth", localdate.LastDayOfMonth},
		jumpItem{"First day of next month", "FirstDayOfNextMonth", localdate.FirstDayOfNextMonth},
		jumpItem{"Last day of next month", "LastDayOfNextMonth", localdate.LastDayOfNextMonth},
		jumpItem{"First day of year", "FirstDayOfYear", localdate.FirstDayOfYear},
		jumpItem{"Last day of year", "LastDayOfYear", localdate.LastDayOfYear},
		jumpItem{"First day of next year", "FirstDayOfNextYear", localdate.FirstDayOfNextYear},
		jumpItem{"Last day of next year", "LastDayOfNextYear", localdate.LastDayOfNextYear},
		jumpItem{"First day of last year", "FirstDayOfLastYear", localdate.FirstDayOfLastYear},
		jumpItem{"Last day of last year", "LastDayOfLastYear", localdate.LastDayOfLastYear},
		jumpItem{"Next " + name, "strictly after the selected day", weekdayJump(localdate.Next, ws)},
		jumpItem{"Previous " + name, "strictly before the selected day", weekdayJump(localdate.Previous, ws)},
		jumpItem{"First " + name + " in month", "FirstInMonth", weekdayJump(localdate.FirstInMonth, ws)},
		jumpItem{"Last " + name + " in month", "LastInMonth", weekdayJump(localdate.LastInMonth, ws)},
	}
}

func weekdayJump(fn func(localdate.Date, time.Weekday) localdate.Date, ws time.Weekday) func(localdate.Date) localdate.Date {
	return func(d localdate.Date) localdate.Date { return fn(d, ws) }
}

func (m model) Init() tea.Cmd { return cmdRefreshConfig(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.jumps.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case configRefreshedMsg:
		m.configFound = msg.found
		m.configRoot = msg.root
		return m, nil

	case initConfigDoneMsg:
		if msg.err != nil {
			m.log.Error("config.init.failed", "dir", msg.dir, "err", msg.err)
			m.toast = UserMessage(msg.err)
		} else {
			m.toast = "localdate.yaml " + msg.status
		}
		return m, cmdRefreshConfig(m.deps)

	case tea.KeyMsg:
		switch m.scr {
		case screenJump:
			return m.updateJump(msg)
		case screenGoto:
			return m.updateGoto(msg)
		default:
			return m.updateCalendar(msg)
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenJump:
		m.jumps, cmd = m.jumps.Update(msg)
	case screenGoto:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.selected = m.selected.PlusDays(-1)
	case "right", "l":
		m.selected = m.selected.PlusDays(1)
	case "up", "k":
		m.selected = m.selected.PlusDays(-7)
	case "down", "j":
		m.selected = m.selected.PlusDays(7)
	case "pgup", "[":
		m.selected = m.selected.PlusMonths(-1)
	case "pgdown", "]":
		m.selected = m.selected.PlusMonths(1)
	case "{":
		m.selected = m.selected.PlusYears(-1)
	case "}":
		m.selected = m.selected.PlusYears(1)
	case "t":
		m.selected = m.today
	case "m", "enter":
		m.scr = screenJump
	case "g":
		m.scr = screenGoto
		m.input.SetValue("")
		return m, m.input.Focus()
	case "i":
		return m, cmdInitConfigHere(m.deps)
	}
	return m, nil
}

func (m model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jumps.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.jumps, cmd = m.jumps.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "b":
		m.scr = screenCalendar
		return m, nil
	case "enter":
		if it, ok := m.jumps.SelectedItem().(jumpItem); ok {
			m.selected = it.jump(m.selected)
			m.log.Debug("calendar.jump", "item", it.title, "to", m.selected.String())
		}
		m.scr = screenCalendar
		return m, nil
	}

	var cmd tea.Cmd
	m.jumps, cmd = m.jumps.Update(msg)
	return m, cmd
}

func (m model) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.scr = screenCalendar
		m.input.Blur()
		m.toast = ""
		return m, nil
	case "enter":
		d, err := m.deps.Evaluator.ResolveDate(m.input.Value())
		if err != nil {
			m.toast = UserMessage(err)
			return m, nil
		}
		m.selected = d
		m.scr = screenCalendar
		m.input.Blur()
		m.toast = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("localdate") + "\n" +
		m.theme.Subtitle.Render("Month calendar") + "\n"

	var banner string
	if m.configFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Config: %s", m.configRoot))
	} else {
		banner = m.theme.Help.Render("No localdate.yaml found (defaults in use; press i to write one here)")
	}
	if m.deps.LogPath != "" {
		banner += "\n" + m.theme.Help.Render("Logs: "+m.deps.LogPath)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenJump:
		help := m.theme.Help.Render("↑/↓ navigate • enter jump • / search • esc back")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.jumps.View()) + "\n" + help)

	case screenGoto:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render("Go to date"),
				m.input.View(),
				m.theme.Help.Render("enter go • esc back"),
			),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card + toast)

	default:
		card := m.theme.Card.Render(
			renderMonth(m.theme, m.selected, m.today, m.deps.WeekStart) + "\n\n" +
				renderDetails(m.selected, m.today),
		)
		help := m.theme.Help.Render("←/→ day • ↑/↓ week • [/] month • {/} year • t today • m jump • g go to • i init config • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + card + "\n" + help + toast)
	}
}
