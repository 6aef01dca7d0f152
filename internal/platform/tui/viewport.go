package tui

import (
	"math"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
)

// Viewport maps world units onto terminal cells. The whole world is
// stretched over the screen, so aspect ratio follows the terminal.
type Viewport struct {
	World      config.WorldConfig
	Cols, Rows int
}

func (v Viewport) scale() (sx, sy float64) {
	return float64(v.Cols) / v.World.Width, float64(v.Rows) / v.World.Height
}

// ToCell returns the cell containing world point (x, y).
func (v Viewport) ToCell(x, y float64) (col, row int) {
	sx, sy := v.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	sx, sy := v.scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

// CellRect returns the cells covered by a world rectangle. Anything with
// a positive size covers at least one cell.
func (v Viewport) CellRect(r core.RectF) core.Rect {
	sx, sy := v.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}
