package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	diffInsertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	diffDeleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
