package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout_WidthsSumToTerminalWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{name: "even width", width: 120},
		{name: "odd width", width: 121},
		{name: "narrow odd width", width: 81},
		{name: "minimal width", width: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.width, 40)

			assert.Equal(t, tt.width, l.SystemInfo.Width+l.MemoryGauge.Width,
				"halves must sum to the full width with no gap or overlap")
			assert.Equal(t, l.SystemInfo.Width, l.Specs.Width)
			assert.Equal(t, l.MemoryGauge.Width, l.CPUGauge.Width)
			assert.Equal(t, l.MemoryGauge.Width, l.ProcessTable.Width)
			assert.Equal(t, l.MemoryGauge.Width, l.Spare.Width)
		})
	}
}

func TestComputeLayout_FixedRegionHeights(t *testing.T) {
	l := computeLayout(120, 40)

	assert.Equal(t, 6, l.SystemInfo.Height, "system info fits 4 text lines plus border")
	assert.Equal(t, 34, l.Specs.Height, "specs takes the remaining left column")
	assert.Equal(t, 3, l.MemoryGauge.Height)
	assert.Equal(t, 3, l.CPUGauge.Height)
	assert.Equal(t, 13, l.ProcessTable.Height)
	assert.Equal(t, 21, l.Spare.Height, "spare takes the remaining right column")
}

func TestComputeLayout_ColumnsFillHeight(t *testing.T) {
	for _, height := range []int{19, 20, 24, 50} {
		l := computeLayout(100, height)

		leftTotal := l.SystemInfo.Height + l.Specs.Height
		rightTotal := l.MemoryGauge.Height + l.CPUGauge.Height + l.ProcessTable.Height + l.Spare.Height
		assert.Equal(t, height, leftTotal, "left column should fill height %d", height)
		assert.Equal(t, height, rightTotal, "right column should fill height %d", height)
	}
}

func TestComputeLayout_ShortTerminal(t *testing.T) {
	// Fixed regions shrink rather than overflow when the terminal is shorter
	// than their combined heights.
	l := computeLayout(80, 8)

	assert.Equal(t, 6, l.SystemInfo.Height)
	assert.Equal(t, 2, l.Specs.Height)
	assert.Equal(t, 3, l.MemoryGauge.Height)
	assert.Equal(t, 3, l.CPUGauge.Height)
	assert.Equal(t, 2, l.ProcessTable.Height)
	assert.Equal(t, 0, l.Spare.Height)
}
