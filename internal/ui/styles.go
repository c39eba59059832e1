package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Dashboard palette: one red accent over a dark background, used uniformly.
const (
	ColorAccent    = lipgloss.Color("#FF2B2B") // red accent
	ColorDarkBg    = lipgloss.Color("#000000") // terminal black
	ColorSurfaceBg = lipgloss.Color("#1A1A1A") // banded-row surface
)

// Base styles for the dashboard regions.
var (
	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	GaugeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// Table header: dark text on the accent background.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorDarkBg).
				Background(ColorAccent).
				Bold(true)

	// Alternate band applied to data rows at even index.
	TableBandStyle = lipgloss.NewStyle().
			Background(ColorSurfaceBg)
)

// LabeledLine renders a "Label: value" line with the accent-bold label style.
func LabeledLine(label, value string) string {
	return LabelStyle.Render(label+": ") + ValueStyle.Render(value)
}
