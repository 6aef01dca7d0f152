package tui

import (
	"testing"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
)

// testViewport maps 8 world units to one cell on both axes.
func testViewport() Viewport {
	return Viewport{
		World: config.WorldConfig{Width: 800, Height: 400, GroundY: 350},
		Cols:  100,
		Rows:  50,
	}
}

func TestViewportToCell(t *testing.T) {
	vp := testViewport()

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{7.9, 7.9, 0, 0},
		{8, 8, 1, 1},
		{400, 200, 50, 25},
		{799, 399, 99, 49},
		{-1, -1, -1, -1},
	}

	for _, tt := range tests {
		col, row := vp.ToCell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestViewportToWorldRoundTrip(t *testing.T) {
	vp := testViewport()

	for _, c := range [][2]int{{0, 0}, {10, 4}, {99, 49}, {37, 12}} {
		x, y := vp.ToWorld(c[0], c[1])
		col, row := vp.ToCell(x, y)
		if col != c[0] || row != c[1] {
			t.Errorf("cell %v maps to (%v, %v) and back to (%d, %d)", c, x, y, col, row)
		}
	}

	if x, y := vp.ToWorld(10, 4); x != 84 || y != 36 {
		t.Errorf("ToWorld(10, 4) = (%v, %v), expected (84, 36)", x, y)
	}
}

func TestViewportCellRect(t *testing.T) {
	vp := testViewport()

	tests := []struct {
		name     string
		in       core.RectF
		expected core.Rect
	}{
		{"aligned", core.NewRectF(16, 16, 32, 16), core.NewRect(2, 2, 4, 2)},
		{"partial cells round outward", core.NewRectF(120, 300, 40, 56), core.NewRect(15, 37, 5, 8)},
		{"tiny rect covers one cell", core.NewRectF(10, 10, 1, 1), core.NewRect(1, 1, 1, 1)},
		{"empty rect covers one cell", core.NewRectF(8, 8, 0, 0), core.NewRect(1, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.CellRect(tt.in); got != tt.expected {
				t.Errorf("CellRect(%+v) = %+v, expected %+v", tt.in, got, tt.expected)
			}
		})
	}
}
