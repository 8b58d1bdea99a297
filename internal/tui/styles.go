package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent   = lipgloss.Color("#8BC34A")
	muted    = lipgloss.Color("#6B7280")
	danger   = lipgloss.Color("#E53935")
	headline = lipgloss.Color("#F2F2F2")
)

type styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
	Selected   lipgloss.Style
	Recipe     lipgloss.Style
	Detail     lipgloss.Style
	Error      lipgloss.Style
	Empty      lipgloss.Style
	Pagination lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(headline).Background(lipgloss.Color("#101F38")).Padding(0, 1),
		Label:      lipgloss.NewStyle().Foreground(muted),
		Focused:    lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		Selected:   lipgloss.NewStyle().Foreground(accent),
		Recipe:     lipgloss.NewStyle().Bold(true),
		Detail:     lipgloss.NewStyle().Foreground(muted).PaddingLeft(2),
		Error:      lipgloss.NewStyle().Foreground(danger).Bold(true),
		Empty:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		Pagination: lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
