// quickmemo/tui/styles.go
package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	dim    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	warn   = lipgloss.AdaptiveColor{Light: "#D9534F", Dark: "#FF6F61"}

	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorStyle = lipgloss.NewStyle().Foreground(dim)
	dateStyle      = lipgloss.NewStyle().Foreground(dim)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	keyStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(dim)
	statusStyle    = lipgloss.NewStyle().Foreground(warn)
)
