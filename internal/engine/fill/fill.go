package fill

import "github.com/dshills/gridstorm/internal/engine/cell"

// Enclosed returns a copy of store in which every enclosed region of
// inactive cells has been painted with rec. Cells already active and cells
// in regions that touch the grid boundary are unchanged.
//
// The scan visits grid coordinates in row-major order, so the result and
// the amount of work done are independent of the store's internal map
// iteration order. Each inactive cell is traversed at most once across the
// whole call: a region classified as open is remembered and never
// reprocessed from another of its cells.
func Enclosed(store *cell.Store, rows, cols int, rec cell.Record) *cell.Store {
	out := store.Clone()
	if rows <= 0 || cols <= 0 {
		return out
	}

	classified := make(map[cell.Coord]bool, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			start := cell.Coord{Row: row, Col: col}
			if out.Contains(start) || classified[start] {
				continue
			}

			region, open := traverse(out, start, rows, cols)

			// Open or enclosed, the whole region is settled either way.
			for _, coord := range region {
				classified[coord] = true
			}
			if open {
				continue
			}
			for _, coord := range region {
				out.Set(coord, rec)
			}
		}
	}

	return out
}

// traverse collects the maximal inactive region containing start using an
// explicit work-list. It reports the region and whether the region escapes
// the grid boundary. Active neighbors terminate a branch; out-of-range
// neighbors mark the region open but the traversal continues so the full
// region is still classified.
func traverse(store *cell.Store, start cell.Coord, rows, cols int) ([]cell.Coord, bool) {
	visited := map[cell.Coord]bool{start: true}
	region := []cell.Coord{start}
	stack := []cell.Coord{start}
	open := false

	for len(stack) > 0 {
		coord := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range coord.Neighbors() {
			if !next.In(rows, cols) {
				open = true
				continue
			}
			if visited[next] || store.Contains(next) {
				continue
			}
			visited[next] = true
			region = append(region, next)
			stack = append(stack, next)
		}
	}

	return region, open
}
