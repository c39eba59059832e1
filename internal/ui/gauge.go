package ui

import (
	"strings"
)

// Gauge bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ClampPercent clamps a fill percentage into the gauge's accepted 0-100
// range. Raw CPU readings can transiently exceed 100 on multi-core bursts.
func ClampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// GaugeBar builds the unstyled bar row for a gauge: filled cells on the
// left, empty cells on the right, with the label overlaid in the center.
// The filled cell count is percent·width/100, truncated.
func GaugeBar(percent int, label string, width int) string {
	if width < 1 {
		return ""
	}
	percent = ClampPercent(percent)

	filled := percent * width / 100
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = BarFilled
		} else {
			bar[i] = BarEmpty
		}
	}

	// Overlay the label centered on the bar.
	labelRunes := []rune(label)
	if len(labelRunes) <= width {
		start := (width - len(labelRunes)) / 2
		copy(bar[start:], labelRunes)
	}

	return string(bar)
}

// Gauge renders a bordered, titled percentage gauge. The fill amount and the
// label are independent inputs: callers may legitimately pass a truncated
// fill with a rounded label.
func Gauge(title string, percent int, label string, width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}

	innerWidth := width - 4
	bar := GaugeStyle.Render(GaugeBar(percent, label, innerWidth))

	innerHeight := height - 2
	rows := make([]string, 0, height)
	rows = append(rows, PanelHeader(title, width))
	for i := 0; i < innerHeight; i++ {
		if i == 0 {
			rows = append(rows, PanelContentLine(bar, width))
		} else {
			rows = append(rows, PanelContentLine("", width))
		}
	}
	rows = append(rows, PanelFooter(width))

	return strings.Join(rows, "\n")
}
