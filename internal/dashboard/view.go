package dashboard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vazpera/supermarket/internal/ui"
)

// renderDashboard paints every region of the current layout and joins them
// into one frame. It is a pure function of the snapshot, the terminal size,
// and the interaction state.
func (m Model) renderDashboard() string {
	layout := computeLayout(m.width, m.height)

	left := joinColumn(
		m.renderSystemInfo(layout.SystemInfo),
		m.renderSpecs(layout.Specs),
	)
	right := joinColumn(
		m.renderMemoryGauge(layout.MemoryGauge),
		m.renderCPUGauge(layout.CPUGauge),
		m.renderProcessTable(layout.ProcessTable),
		m.renderSpare(layout.Spare),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// joinColumn stacks the non-empty region strings vertically. Regions whose
// rectangle degenerated to nothing render as "" and must not leave a gap.
func joinColumn(regions ...string) string {
	parts := make([]string, 0, len(regions))
	for _, r := range regions {
		if r != "" {
			parts = append(parts, r)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderSystemInfo(r Rect) string {
	lines := []string{
		ui.LabeledLine("System Name", m.snapshot.SystemName),
		ui.LabeledLine("Host Name", m.snapshot.HostName),
		ui.LabeledLine("OS Version", m.snapshot.OSVersion),
		ui.LabeledLine("Kernel Version", m.snapshot.KernelVersion),
	}
	return ui.Panel("System Information", lines, r.Width, r.Height)
}

func (m Model) renderSpecs(r Rect) string {
	lines := []string{
		ui.LabeledLine("Core Count", strconv.Itoa(m.snapshot.CoreCount)),
		ui.LabeledLine("Total RAM", FormatTotalRAM(m.snapshot.TotalMemory)),
	}
	return ui.Panel("Specs", lines, r.Width, r.Height)
}

func (m Model) renderMemoryGauge(r Rect) string {
	pct := MemoryPercent(m.snapshot.UsedMemory, m.snapshot.TotalMemory, m.log)
	return ui.Gauge("Used Memory", pct, fmt.Sprintf("%d%%", pct), r.Width, r.Height)
}

func (m Model) renderCPUGauge(r Rect) string {
	return ui.Gauge("CPU Usage",
		CPUGaugeFill(m.snapshot.CPUPercent),
		CPULabel(m.snapshot.CPUPercent),
		r.Width, r.Height)
}

func (m Model) renderProcessTable(r Rect) string {
	ranked := RankProcesses(m.snapshot.Processes)
	rows := make([][]string, len(ranked))
	for i, p := range ranked {
		rows[i] = []string{
			p.Name,
			fmt.Sprintf("%d%%", ProcessPercent(p.Memory, m.snapshot.TotalMemory)),
		}
	}
	return ui.Table("Processes", []string{"Name", "Memory Usage"}, rows, r.Width, r.Height)
}

// renderSpare paints the reserved fill region below the process table.
func (m Model) renderSpare(r Rect) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(r.Width).Height(r.Height).Render("")
}
