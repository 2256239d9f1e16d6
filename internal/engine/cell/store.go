package cell

import "sort"

// Store is a sparse mapping from coordinate to cell record.
// The zero value is not usable; create stores with NewStore.
//
// A Store is owned by exactly one snapshot or working copy at a time.
// It is not safe for concurrent mutation; the engine facade serializes
// access.
type Store struct {
	cells map[Coord]Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[Coord]Record)}
}

// Toggle sets or unsets the record at coord.
// If the stored record equals rec, the cell is removed. Otherwise the cell
// is inserted or overwritten with rec.
func (s *Store) Toggle(coord Coord, rec Record) {
	if existing, ok := s.cells[coord]; ok && existing == rec {
		delete(s.cells, coord)
		return
	}
	s.cells[coord] = rec
}

// Set inserts or overwrites the record at coord unconditionally.
// Used by drag painting, fill, and document loading, where re-applying the
// same record must not un-set the cell.
func (s *Store) Set(coord Coord, rec Record) {
	s.cells[coord] = rec
}

// Contains reports whether coord holds a record.
func (s *Store) Contains(coord Coord) bool {
	_, ok := s.cells[coord]
	return ok
}

// Get returns the record at coord and whether one exists.
func (s *Store) Get(coord Coord) (Record, bool) {
	rec, ok := s.cells[coord]
	return rec, ok
}

// Clear removes all records.
func (s *Store) Clear() {
	s.cells = make(map[Coord]Record)
}

// Len returns the number of active cells.
func (s *Store) Len() int {
	return len(s.cells)
}

// IsEmpty reports whether the store has no active cells.
func (s *Store) IsEmpty() bool {
	return len(s.cells) == 0
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	out := &Store{cells: make(map[Coord]Record, len(s.cells))}
	for coord, rec := range s.cells {
		out.cells[coord] = rec
	}
	return out
}

// Equal reports whether two stores hold exactly the same records.
func (s *Store) Equal(other *Store) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for coord, rec := range s.cells {
		if o, ok := other.cells[coord]; !ok || o != rec {
			return false
		}
	}
	return true
}

// ActiveCell pairs a coordinate with its record for enumeration.
type ActiveCell struct {
	Coord  Coord
	Record Record
}

// Cells returns all active cells in row-major order.
// The order is deterministic so renderers and file output are stable.
func (s *Store) Cells() []ActiveCell {
	out := make([]ActiveCell, 0, len(s.cells))
	for coord, rec := range s.cells {
		out = append(out, ActiveCell{Coord: coord, Record: rec})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Coord.Less(out[j].Coord)
	})
	return out
}

// Clip returns a new store containing only records inside a rows x cols
// grid. Clipping an already-clipped store to the same bounds returns an
// equal store.
func Clip(s *Store, rows, cols int) *Store {
	out := &Store{cells: make(map[Coord]Record, len(s.cells))}
	for coord, rec := range s.cells {
		if coord.In(rows, cols) {
			out.cells[coord] = rec
		}
	}
	return out
}
