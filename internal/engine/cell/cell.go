package cell

import "fmt"

// Coord identifies a grid cell by row and column.
// Rows and columns are zero-based.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less reports whether c orders before other (row-major).
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// In reports whether the coordinate lies inside a rows x cols grid.
func (c Coord) In(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Neighbors returns the four orthogonal neighbors, unbounded.
// Order is up, down, left, right.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}

// Record holds the attributes of an active cell.
// A zero Record is a valid "just active" value. Record is comparable;
// Toggle relies on == for its remove-vs-overwrite decision.
type Record struct {
	// Color is the paint color as "#RRGGBB". Empty means the default color.
	Color string

	// Outline marks the cell for outlined rendering.
	Outline bool
}
