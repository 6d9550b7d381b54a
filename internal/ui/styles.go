package ui

import (
	"datagrid/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.ColorMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(theme.ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.ColorMuted).
			Padding(1, 2)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(theme.ColorAccent)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted).
			Padding(0, 1)

	SelectionStyle = lipgloss.NewStyle().
			Foreground(theme.ColorYellow)
)
