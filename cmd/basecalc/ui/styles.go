// Package ui provides the bubbletea pages for the basecalc terminal
// interface: the radix calculator plus the direct conversion views.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors shared by every page.
var (
	ColorPrimary = lipgloss.Color("#8BC34A")
	ColorAccent  = lipgloss.Color("#2196F3")
	ColorError   = lipgloss.Color("#E53935")
	ColorMuted   = lipgloss.Color("#6C7086")
	ColorValue   = lipgloss.Color("#FFD54F")
)

// Styles bundles the lipgloss styles pages render with.
type Styles struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Help      lipgloss.Style
	Panel     lipgloss.Style
	BitOn     lipgloss.Style
	BitOff    lipgloss.Style
	BitCursor lipgloss.Style
}

// DefaultStyles returns the standard theme.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Underline(true),
		TabIdle:   lipgloss.NewStyle().Foreground(ColorMuted),
		Label:     lipgloss.NewStyle().Foreground(ColorAccent),
		Value:     lipgloss.NewStyle().Foreground(ColorValue),
		Error:     lipgloss.NewStyle().Foreground(ColorError),
		Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
		Help:      lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
		BitOn:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		BitOff:    lipgloss.NewStyle().Foreground(ColorMuted),
		BitCursor: lipgloss.NewStyle().Reverse(true),
	}
}
