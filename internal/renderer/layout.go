package renderer

import "github.com/dshills/gridstorm/internal/engine/cell"

// Layout maps grid coordinates to screen positions and back.
// Each grid cell occupies CellWidth screen columns and one screen row,
// inside a one-character frame drawn around the grid.
type Layout struct {
	OriginX   int // screen column of the frame's top-left corner
	OriginY   int // screen row of the frame's top-left corner
	Rows      int
	Cols      int
	CellWidth int
}

// NewLayout builds a layout for a rows x cols grid with the given cell
// width in screen columns. Widths below one are clamped to one.
func NewLayout(rows, cols, cellWidth int) Layout {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return Layout{Rows: rows, Cols: cols, CellWidth: cellWidth}
}

// CellOrigin returns the screen position of a grid cell's leftmost column.
func (l Layout) CellOrigin(coord cell.Coord) (x, y int) {
	x = l.OriginX + 1 + coord.Col*l.CellWidth
	y = l.OriginY + 1 + coord.Row
	return x, y
}

// FrameWidth returns the total frame width in screen columns.
func (l Layout) FrameWidth() int {
	return l.Cols*l.CellWidth + 2
}

// FrameHeight returns the total frame height in screen rows.
func (l Layout) FrameHeight() int {
	return l.Rows + 2
}

// StatusY returns the screen row of the status line under the frame.
func (l Layout) StatusY() int {
	return l.OriginY + l.FrameHeight()
}

// HitTest converts a screen position to the grid cell under it.
// It reports false for positions on the frame or outside the grid.
func (l Layout) HitTest(x, y int) (cell.Coord, bool) {
	col := (x - l.OriginX - 1) / l.CellWidth
	row := y - l.OriginY - 1

	if x <= l.OriginX || y <= l.OriginY {
		return cell.Coord{}, false
	}
	coord := cell.Coord{Row: row, Col: col}
	if !coord.In(l.Rows, l.Cols) {
		return cell.Coord{}, false
	}
	return coord, true
}
