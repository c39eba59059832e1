package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Table renders a bordered, titled table for the dashboard. The header row
// is always present and styled distinctly; data rows alternate the surface
// background starting from the first data row. Columns split the inner
// width 50/50. Rows beyond the table's inner height are dropped.
func Table(title string, header []string, rows [][]string, width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}

	innerWidth := width - 4
	leftCol := innerWidth / 2
	rightCol := innerWidth - leftCol

	innerHeight := height - 2
	out := make([]string, 0, height)
	out = append(out, PanelHeader(title, width))
	out = append(out, PanelContentLine(tableRow(header, leftCol, rightCol, TableHeaderStyle), width))

	for i := 0; i < innerHeight-1; i++ {
		if i >= len(rows) {
			out = append(out, PanelContentLine("", width))
			continue
		}
		style := ValueStyle
		if i%2 == 0 {
			style = ValueStyle.Background(ColorSurfaceBg)
		}
		out = append(out, PanelContentLine(tableRow(rows[i], leftCol, rightCol, style), width))
	}
	out = append(out, PanelFooter(width))

	return strings.Join(out, "\n")
}

// tableRow pads a two-cell row to the column widths and applies one style
// across the full row so background banding covers the whole line.
func tableRow(cells []string, leftCol, rightCol int, style lipgloss.Style) string {
	left, right := "", ""
	if len(cells) > 0 {
		left = cells[0]
	}
	if len(cells) > 1 {
		right = cells[1]
	}
	return style.Render(pad(left, leftCol) + pad(right, rightCol))
}

// pad truncates or space-pads a cell to exactly the given width.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// TableColumn defines a column for the non-interactive CLI table.
type TableColumn struct {
	Title string
	Width int
}

// RenderSimpleTable renders a non-interactive table string via the Bubbles
// table widget. This is for plain CLI output (not the TUI dashboard).
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorAccent).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorAccent)
	s.Selected = s.Selected.UnsetForeground().UnsetBackground().Bold(false)
	t.SetStyles(s)

	return t.View()
}
