package dashboard

// Rect is a width × height region of the terminal.
type Rect struct {
	Width  int
	Height int
}

// Layout is the fixed partition of the terminal into named regions. It is
// recomputed from the current terminal size on every render and never
// cached, since the terminal may be resized between cycles.
type Layout struct {
	SystemInfo   Rect // left column, fixed height
	Specs        Rect // left column, remaining fill
	MemoryGauge  Rect // right column, fixed height
	CPUGauge     Rect // right column, fixed height
	ProcessTable Rect // right column, fixed height
	Spare        Rect // right column, remaining fill; reserved, painted empty
}

// Fixed region heights.
const (
	systemInfoHeight   = 6 // 4 text lines + border
	gaugeHeight        = 3
	processTableHeight = 13
)

// computeLayout splits the terminal area into the two-column dashboard
// layout. The halves always sum to the full width with no gap or overlap
// (floor split on the left for odd widths).
func computeLayout(width, height int) Layout {
	left := width / 2
	right := width - left

	return Layout{
		SystemInfo:   Rect{Width: left, Height: min(systemInfoHeight, height)},
		Specs:        Rect{Width: left, Height: max(height-systemInfoHeight, 0)},
		MemoryGauge:  Rect{Width: right, Height: min(gaugeHeight, height)},
		CPUGauge:     Rect{Width: right, Height: clampHeight(height-gaugeHeight, gaugeHeight)},
		ProcessTable: Rect{Width: right, Height: clampHeight(height-2*gaugeHeight, processTableHeight)},
		Spare:        Rect{Width: right, Height: max(height-2*gaugeHeight-processTableHeight, 0)},
	}
}

// clampHeight bounds a fixed region height by the space remaining above it.
func clampHeight(remaining, fixed int) int {
	if remaining < 0 {
		return 0
	}
	return min(fixed, remaining)
}
