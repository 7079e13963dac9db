package core

import "math"

// Viewport maps a world measured in game pixels onto a cell grid.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport for a world of worldW x worldH drawn into cols x rows cells.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: Max(cols, 1), Rows: Max(rows, 1)}
}

// X converts a world x coordinate to a column.
func (v Viewport) X(wx float64) int {
	return int(math.Floor(wx * float64(v.Cols) / v.WorldW))
}

// Y converts a world y coordinate to a row.
func (v Viewport) Y(wy float64) int {
	return int(math.Floor(wy * float64(v.Rows) / v.WorldH))
}

// Rect converts a world rectangle to the cells it covers.
// Any non-empty world rect covers at least one cell.
func (v Viewport) Rect(r RectF) Rect {
	x0, y0 := v.X(r.X), v.Y(r.Y)
	x1 := int(math.Ceil(r.Right() * float64(v.Cols) / v.WorldW))
	y1 := int(math.Ceil(r.Bottom() * float64(v.Rows) / v.WorldH))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}
