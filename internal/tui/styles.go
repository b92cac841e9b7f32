package tui

import "github.com/charmbracelet/lipgloss"

const (
	accent = lipgloss.Color("12")
	notice = lipgloss.Color("10")
	muted  = lipgloss.Color("240")
	chosen = lipgloss.Color("11")
	edge   = lipgloss.Color("238")
)

var (
	styleFilter        = lipgloss.NewStyle().Foreground(accent).Bold(true)
	styleEntry         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleEntrySelected = lipgloss.NewStyle().Foreground(chosen).Bold(true)
	styleEntryOverall  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	styleEntrySystem   = lipgloss.NewStyle().Foreground(notice).Italic(true)
	styleMuted         = lipgloss.NewStyle().Foreground(muted)
	styleStatusBar     = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
)

// panel frames a pane; the focused one gets the accent border.
func panel(focused bool) lipgloss.Style {
	border := edge
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
}
