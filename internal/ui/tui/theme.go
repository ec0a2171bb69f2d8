package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	// calendar cells
	Header   lipgloss.Style
	Day      lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Outside  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Day:      lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		Today:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("212")),
		Outside:  lipgloss.NewStyle().Faint(true),
	}
}
