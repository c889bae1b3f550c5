package studio

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor   = lipgloss.Color("245")
	warningColor = lipgloss.Color("226")
	errorColor   = lipgloss.Color("196")

	labelStyle = lipgloss.NewStyle().Foreground(mutedColor)
	valueStyle = lipgloss.NewStyle().Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			PaddingLeft(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(errorColor).
				PaddingLeft(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
