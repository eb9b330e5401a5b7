package overview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	greeting  lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	cardValue lipgloss.Style
	section   lipgloss.Style
	income    lipgloss.Style
	expense   lipgloss.Style
	detail    lipgloss.Style
	empty     lipgloss.Style
	errBanner lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		greeting:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginRight(1),
		cardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		cardValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		section:   lipgloss.NewStyle().MarginTop(1),
		income:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		expense:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:     lipgloss.NewStyle().Faint(true),
		errBanner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
