package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	invalidRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)

	toastSuccessStyle = overlayBoxStyle.BorderForeground(lipgloss.Color("10"))
	toastFailureStyle = overlayBoxStyle.BorderForeground(lipgloss.Color("9"))
)
