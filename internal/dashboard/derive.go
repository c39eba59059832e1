package dashboard

import (
	"fmt"
	"math"
	"sort"

	"github.com/Vazpera/supermarket/internal/logger"
	"github.com/Vazpera/supermarket/internal/metrics"
	"github.com/Vazpera/supermarket/internal/ui"
)

// MaxProcessRows caps the process ranking shown in the table.
const MaxProcessRows = 10

// MemoryPercent derives the rounded memory utilization percentage. Both the
// memory gauge's fill and its label use this value. A zero total is never a
// fault: constrained or virtualized hosts can plausibly report it, so it
// renders as 0% with a warning.
func MemoryPercent(used, total uint64, log logger.Logger) int {
	if total == 0 {
		log.Warn("host reported zero total memory, rendering memory usage as 0%%")
		return 0
	}
	return int(math.Round(100 * float64(used) / float64(total)))
}

// CPUGaugeFill derives the CPU gauge fill: the raw reading truncated to an
// integer, then clamped into the gauge's 0-100 range (raw usage can exceed
// 100 transiently on multi-core bursts).
func CPUGaugeFill(raw float64) int {
	return ui.ClampPercent(int(raw))
}

// CPULabel derives the CPU text label: the raw reading rounded. Computed
// independently of CPUGaugeFill, so the two can differ by one for
// fractional readings (raw 99.6 fills 99 cells but labels "100%").
func CPULabel(raw float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(raw)))
}

// RankProcesses orders processes by resident memory, descending, and keeps
// the top MaxProcessRows. The sort is stable: processes with equal memory
// keep their acquisition order, so the displayed ranking is deterministic.
// The input slice is not modified.
func RankProcesses(procs []metrics.ProcessInfo) []metrics.ProcessInfo {
	ranked := make([]metrics.ProcessInfo, len(procs))
	copy(ranked, procs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Memory > ranked[j].Memory
	})
	if len(ranked) > MaxProcessRows {
		ranked = ranked[:MaxProcessRows]
	}
	return ranked
}

// ProcessPercent derives a process's share of total memory using truncating
// integer division. A zero total renders every row as 0%.
func ProcessPercent(memory, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(100 * memory / total)
}

// FormatTotalRAM converts a byte count to gibibytes with two decimal places.
func FormatTotalRAM(total uint64) string {
	return fmt.Sprintf("%.2f GB", float64(total)/math.Pow(2, 30))
}
