package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	widestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Underline(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	declStyle     = lipgloss.NewStyle().PaddingLeft(2)
)
