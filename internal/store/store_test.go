package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/gridstorm/internal/engine/cell"
)

func TestRoundTrip(t *testing.T) {
	cells := []cell.ActiveCell{
		{Coord: cell.Coord{Row: 0, Col: 0}, Record: cell.Record{Color: "#ff0000"}},
		{Coord: cell.Coord{Row: 2, Col: 3}, Record: cell.Record{Color: "#00ff00", Outline: true}},
		{Coord: cell.Coord{Row: 4, Col: 1}, Record: cell.Record{}},
	}
	doc := NewDocument(5, 5, 2, cells)

	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.ID != doc.ID {
		t.Errorf("id = %s, want %s", got.ID, doc.ID)
	}
	if got.Rows != 5 || got.Cols != 5 || got.CellSize != 2 {
		t.Errorf("dimensions = %dx%d size %d, want 5x5 size 2", got.Rows, got.Cols, got.CellSize)
	}
	if len(got.Cells) != len(cells) {
		t.Fatalf("cells = %d, want %d", len(got.Cells), len(cells))
	}
	for i, want := range cells {
		if got.Cells[i] != want {
			t.Errorf("cell %d = %+v, want %+v", i, got.Cells[i], want)
		}
	}
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "not json",
			data: `{broken`,
			want: ErrMalformedDocument,
		},
		{
			name: "missing version",
			data: `{"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "future version",
			data: `{"version":9,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[]}`,
			want: ErrUnsupportedVersion,
		},
		{
			name: "bad id",
			data: `{"version":1,"id":"nope","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "missing grid",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","cells":[]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "zero rows",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":0,"cols":3,"cellSize":2},"cells":[]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "missing cells",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2}}`,
			want: ErrMalformedDocument,
		},
		{
			name: "string row",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[{"row":"1","col":0}]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "cell outside grid",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[{"row":5,"col":0}]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "bad color",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[{"row":1,"col":1,"color":"red"}]}`,
			want: ErrMalformedDocument,
		},
		{
			name: "duplicate cell",
			data: `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":3,"cols":3,"cellSize":2},"cells":[{"row":1,"col":1},{"row":1,"col":1}]}`,
			want: ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnmarshalEmptyGrid(t *testing.T) {
	data := `{"version":1,"id":"7b7e0a22-06c1-4d54-9f52-000000000001","grid":{"rows":4,"cols":6,"cellSize":1},"cells":[]}`
	doc, err := Unmarshal([]byte(data))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Cells) != 0 {
		t.Errorf("cells = %d, want 0", len(doc.Cells))
	}
	if doc.Rows != 4 || doc.Cols != 6 {
		t.Errorf("dimensions = %dx%d, want 4x6", doc.Rows, doc.Cols)
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	doc := NewDocument(3, 3, 2, []cell.ActiveCell{
		{Coord: cell.Coord{Row: 1, Col: 1}, Record: cell.Record{Color: "#336699"}},
	})

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.ID != doc.ID || len(got.Cells) != 1 {
		t.Errorf("loaded %+v, want %+v", got, doc)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}
