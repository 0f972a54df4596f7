package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the browse view.
type Styles struct {
	Title        lipgloss.Style
	Row          lipgloss.Style
	ActivePage   lipgloss.Style
	InactivePage lipgloss.Style
	Disabled     lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	List         lipgloss.Style
}

func DefaultStyles() Styles {

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Row:          lipgloss.NewStyle(),
		ActivePage:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true),
		InactivePage: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Disabled:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		List:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
