package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the pre-computed lipgloss styles for the UI
type Styles struct {
	Header  lipgloss.Style
	Timer   lipgloss.Style
	Running lipgloss.Style
	Dim     lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	DayHeader lipgloss.Style
	Total     lipgloss.Style
	Selected  lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}

// DefaultStyles returns the default style set
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#7f849c"}
	accent := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	green := lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	red := lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}

	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Timer:   lipgloss.NewStyle().Bold(true),
		Running: lipgloss.NewStyle().Bold(true).Foreground(green),
		Dim:     lipgloss.NewStyle().Foreground(subtle),
		Error:   lipgloss.NewStyle().Foreground(red),
		Info:    lipgloss.NewStyle().Foreground(accent),

		DayHeader: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Total:     lipgloss.NewStyle().Bold(true),
		Selected:  lipgloss.NewStyle().Reverse(true),

		HelpKey:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		HelpDesc: lipgloss.NewStyle().Foreground(subtle),
		HelpSep:  lipgloss.NewStyle().Foreground(subtle),
	}
}

// ColorDot renders a small colored indicator for a project color token
func ColorDot(hex string) string {
	if hex == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
