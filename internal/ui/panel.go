package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelHeader renders the top border of a panel with its title inlined.
// Format: ╭─ Title ────────────────────────────────╮
func PanelHeader(title string, width int) string {
	if width < 2 {
		width = 2
	}

	// Left: "╭─ " + title + " ", right: "╮"; fill the middle with ─.
	leftWidth := 3 + lipgloss.Width(title) + 1
	fillWidth := width - leftWidth - 1
	if fillWidth < 0 {
		fillWidth = 0
	}

	return BorderStyle.Render("╭─ ") +
		TitleStyle.Render(title) +
		BorderStyle.Render(" "+strings.Repeat("─", fillWidth)+"╮")
}

// PanelFooter renders the bottom border of a panel.
func PanelFooter(width int) string {
	if width < 2 {
		width = 2
	}
	return BorderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// PanelContentLine renders one content line with side borders, padded to width.
// Format: │ content                              │
func PanelContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	// Inner width excludes the borders and one space of padding each side.
	innerWidth := width - 4
	contentWidth := lipgloss.Width(content)

	if contentWidth > innerWidth {
		content = lipgloss.NewStyle().MaxWidth(innerWidth).Render(content)
		contentWidth = lipgloss.Width(content)
	}

	padding := innerWidth - contentWidth
	if padding < 0 {
		padding = 0
	}

	return BorderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + BorderStyle.Render("│")
}

// Panel renders a bordered, titled region of the given size. Lines beyond
// the panel's inner height are dropped; missing lines become blank rows so
// the panel always occupies exactly its rectangle.
func Panel(title string, lines []string, width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}

	innerHeight := height - 2
	rows := make([]string, 0, height)
	rows = append(rows, PanelHeader(title, width))
	for i := 0; i < innerHeight; i++ {
		content := ""
		if i < len(lines) {
			content = lines[i]
		}
		rows = append(rows, PanelContentLine(content, width))
	}
	rows = append(rows, PanelFooter(width))

	return strings.Join(rows, "\n")
}
