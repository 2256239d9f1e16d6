package fill

import (
	"testing"

	"github.com/dshills/gridstorm/internal/engine/cell"
)

// ring activates every perimeter cell of a rows x cols grid.
func ring(rows, cols int, rec cell.Record) *cell.Store {
	s := cell.NewStore()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row == 0 || row == rows-1 || col == 0 || col == cols-1 {
				s.Set(cell.Coord{Row: row, Col: col}, rec)
			}
		}
	}
	return s
}

func TestEnclosedCenterFilled(t *testing.T) {
	wall := cell.Record{Color: "#000000"}
	paint := cell.Record{Color: "#FF0000"}

	s := ring(3, 3, wall)
	got := Enclosed(s, 3, 3, paint)

	center := cell.Coord{Row: 1, Col: 1}
	rec, ok := got.Get(center)
	if !ok {
		t.Fatal("center of a closed 3x3 ring should be filled")
	}
	if rec != paint {
		t.Errorf("center record = %v, want %v", rec, paint)
	}
	if got.Len() != 9 {
		t.Errorf("Len() = %d, want 9", got.Len())
	}
}

func TestOpenRegionNotFilled(t *testing.T) {
	wall := cell.Record{Color: "#000000"}
	paint := cell.Record{Color: "#FF0000"}

	s := ring(3, 3, wall)
	// Break the ring: the interior now reaches the boundary through the gap.
	s.Toggle(cell.Coord{Row: 0, Col: 1}, wall)

	got := Enclosed(s, 3, 3, paint)
	if got.Contains(cell.Coord{Row: 1, Col: 1}) {
		t.Error("interior connected to the boundary must stay inactive")
	}
	if got.Contains(cell.Coord{Row: 0, Col: 1}) {
		t.Error("the gap cell must stay inactive")
	}
}

func TestFillIsFixedPoint(t *testing.T) {
	wall := cell.Record{Color: "#000000"}
	paint := cell.Record{Color: "#00FF00"}

	s := ring(5, 5, wall)
	once := Enclosed(s, 5, 5, paint)
	twice := Enclosed(once, 5, 5, paint)

	if !once.Equal(twice) {
		t.Error("applying Enclosed twice must equal applying it once")
	}
}

func TestMultipleRegions(t *testing.T) {
	wall := cell.Record{Color: "#000000"}
	paint := cell.Record{Color: "#0000FF"}

	// Two separate 3x3 rings inside a 3x7 grid, sharing the wall column 3.
	s := cell.NewStore()
	for row := 0; row < 3; row++ {
		for col := 0; col < 7; col++ {
			if row == 0 || row == 2 || col == 0 || col == 3 || col == 6 {
				s.Set(cell.Coord{Row: row, Col: col}, wall)
			}
		}
	}

	got := Enclosed(s, 3, 7, paint)
	for _, coord := range []cell.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 4}, {Row: 1, Col: 5}} {
		rec, ok := got.Get(coord)
		if !ok || rec != paint {
			t.Errorf("cell %v = %v, %v, want painted", coord, rec, ok)
		}
	}
}

func TestEnclosedAndOpenRegionsMixed(t *testing.T) {
	wall := cell.Record{Color: "#000000"}
	paint := cell.Record{Color: "#0000FF"}

	// Left chamber sealed, right chamber broken open at the far edge.
	s := cell.NewStore()
	for row := 0; row < 3; row++ {
		for col := 0; col < 7; col++ {
			if row == 0 || row == 2 || col == 0 || col == 3 || col == 6 {
				s.Set(cell.Coord{Row: row, Col: col}, wall)
			}
		}
	}
	s.Toggle(cell.Coord{Row: 1, Col: 6}, wall)

	got := Enclosed(s, 3, 7, paint)
	if !got.Contains(cell.Coord{Row: 1, Col: 1}) {
		t.Error("sealed chamber should be filled")
	}
	if got.Contains(cell.Coord{Row: 1, Col: 4}) {
		t.Error("open chamber should stay inactive")
	}
}

func TestActiveCellsKeepTheirRecords(t *testing.T) {
	wall := cell.Record{Color: "#ABCDEF", Outline: true}
	paint := cell.Record{Color: "#FF0000"}

	s := ring(3, 3, wall)
	got := Enclosed(s, 3, 3, paint)

	rec, ok := got.Get(cell.Coord{Row: 0, Col: 0})
	if !ok || rec != wall {
		t.Errorf("wall record = %v, %v, want original %v", rec, ok, wall)
	}
}

func TestEmptyGridNoFill(t *testing.T) {
	s := cell.NewStore()
	got := Enclosed(s, 4, 4, cell.Record{Color: "#FF0000"})
	if !got.IsEmpty() {
		t.Error("a fully open grid must stay empty")
	}
}

func TestFullGridUnchanged(t *testing.T) {
	rec := cell.Record{Color: "#123456"}
	s := cell.NewStore()
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			s.Set(cell.Coord{Row: row, Col: col}, rec)
		}
	}

	got := Enclosed(s, 2, 2, cell.Record{Color: "#FF0000"})
	if !got.Equal(s) {
		t.Error("a fully active grid must be unchanged")
	}
}

func TestInputStoreNotMutated(t *testing.T) {
	wall := cell.Record{Color: "#000000"}
	s := ring(3, 3, wall)
	before := s.Clone()

	Enclosed(s, 3, 3, cell.Record{Color: "#FF0000"})
	if !s.Equal(before) {
		t.Error("Enclosed must not mutate its input store")
	}
}

func TestZeroBounds(t *testing.T) {
	s := cell.NewStore()
	got := Enclosed(s, 0, 0, cell.Record{})
	if !got.IsEmpty() {
		t.Error("zero-sized grid should produce an empty store")
	}
}
