package tui

import "github.com/charmbracelet/lipgloss"

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)
