package renderer

import "github.com/dshills/gridstorm/internal/engine/cell"

// EdgeMask marks which sides of an active cell border inactive space.
// Outline geometry is derived purely from adjacency queries against the
// active-cell view; the engine knows nothing about edges.
type EdgeMask uint8

// Edge flags.
const (
	EdgeNone EdgeMask = 0
	EdgeUp   EdgeMask = 1 << iota
	EdgeDown
	EdgeLeft
	EdgeRight
)

// Has returns true if the mask contains the given edge.
func (m EdgeMask) Has(edge EdgeMask) bool {
	return m&edge != 0
}

// Any returns true if at least one edge is exposed.
func (m EdgeMask) Any() bool {
	return m != EdgeNone
}

// activeFunc reports whether the cell at coord is active.
type activeFunc func(cell.Coord) bool

// edges computes the exposed edges of coord. An edge is exposed when the
// 4-neighbor on that side is inactive or off the grid.
func edges(active activeFunc, coord cell.Coord) EdgeMask {
	mask := EdgeNone
	neighbors := coord.Neighbors()

	if !active(neighbors[0]) {
		mask |= EdgeUp
	}
	if !active(neighbors[1]) {
		mask |= EdgeDown
	}
	if !active(neighbors[2]) {
		mask |= EdgeLeft
	}
	if !active(neighbors[3]) {
		mask |= EdgeRight
	}
	return mask
}
