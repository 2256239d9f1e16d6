package store

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/gridstorm/internal/engine/cell"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// FormatVersion is the map file format this build reads and writes.
const FormatVersion = 1

// Document is a complete grid state ready to save or just loaded.
type Document struct {
	ID       uuid.UUID
	Rows     int
	Cols     int
	CellSize int
	Cells    []cell.ActiveCell
}

// NewDocument builds a document with a fresh ID.
func NewDocument(rows, cols, cellSize int, cells []cell.ActiveCell) Document {
	return Document{
		ID:       uuid.New(),
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		Cells:    cells,
	}
}

// Marshal renders the document as JSON.
func (d Document) Marshal() ([]byte, error) {
	doc := []byte(`{}`)

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("version", FormatVersion)
	set("id", d.ID.String())
	set("grid.rows", d.Rows)
	set("grid.cols", d.Cols)
	set("grid.cellSize", d.CellSize)
	set("cells", []any{})

	for i, c := range d.Cells {
		prefix := fmt.Sprintf("cells.%d", i)
		set(prefix+".row", c.Coord.Row)
		set(prefix+".col", c.Coord.Col)
		if c.Record.Color != "" {
			set(prefix+".color", c.Record.Color)
		}
		if c.Record.Outline {
			set(prefix+".outline", true)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("encoding map document: %w", err)
	}
	return doc, nil
}

// Unmarshal parses and validates a JSON map document.
// Validation covers the whole file before anything is returned.
func Unmarshal(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("%w: not valid JSON", ErrMalformedDocument)
	}
	root := gjson.ParseBytes(data)

	version := root.Get("version")
	if !version.Exists() || version.Type != gjson.Number {
		return Document{}, fmt.Errorf("%w: missing version", ErrMalformedDocument)
	}
	if version.Int() != FormatVersion {
		return Document{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version.Int())
	}

	id, err := uuid.Parse(root.Get("id").String())
	if err != nil {
		return Document{}, fmt.Errorf("%w: bad document id: %v", ErrMalformedDocument, err)
	}

	rows, err := requireInt(root, "grid.rows")
	if err != nil {
		return Document{}, err
	}
	cols, err := requireInt(root, "grid.cols")
	if err != nil {
		return Document{}, err
	}
	cellSize, err := requireInt(root, "grid.cellSize")
	if err != nil {
		return Document{}, err
	}
	if rows < 1 || cols < 1 || cellSize < 1 {
		return Document{}, fmt.Errorf("%w: non-positive grid dimensions", ErrMalformedDocument)
	}

	cellsNode := root.Get("cells")
	if !cellsNode.Exists() || !cellsNode.IsArray() {
		return Document{}, fmt.Errorf("%w: missing cells array", ErrMalformedDocument)
	}

	var cells []cell.ActiveCell
	var cellErr error
	seen := make(map[cell.Coord]bool)

	cellsNode.ForEach(func(_, node gjson.Result) bool {
		c, err := parseCell(node, rows, cols)
		if err != nil {
			cellErr = err
			return false
		}
		if seen[c.Coord] {
			cellErr = fmt.Errorf("%w: duplicate cell %s", ErrMalformedDocument, c.Coord)
			return false
		}
		seen[c.Coord] = true
		cells = append(cells, c)
		return true
	})
	if cellErr != nil {
		return Document{}, cellErr
	}

	return Document{
		ID:       id,
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		Cells:    cells,
	}, nil
}

// parseCell validates one entry of the cells array.
func parseCell(node gjson.Result, rows, cols int) (cell.ActiveCell, error) {
	if !node.IsObject() {
		return cell.ActiveCell{}, fmt.Errorf("%w: cell entry is not an object", ErrMalformedDocument)
	}

	row := node.Get("row")
	col := node.Get("col")
	if row.Type != gjson.Number || col.Type != gjson.Number {
		return cell.ActiveCell{}, fmt.Errorf("%w: cell coordinates must be numbers", ErrMalformedDocument)
	}

	coord := cell.Coord{Row: int(row.Int()), Col: int(col.Int())}
	if !coord.In(rows, cols) {
		return cell.ActiveCell{}, fmt.Errorf("%w: cell %s outside %dx%d grid", ErrMalformedDocument, coord, rows, cols)
	}

	rec := cell.Record{}
	if color := node.Get("color"); color.Exists() {
		if color.Type != gjson.String {
			return cell.ActiveCell{}, fmt.Errorf("%w: cell color must be a string", ErrMalformedDocument)
		}
		if _, err := core.ParseHex(color.String()); err != nil {
			return cell.ActiveCell{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		rec.Color = color.String()
	}
	if outline := node.Get("outline"); outline.Exists() {
		if !outline.IsBool() {
			return cell.ActiveCell{}, fmt.Errorf("%w: cell outline must be a boolean", ErrMalformedDocument)
		}
		rec.Outline = outline.Bool()
	}

	return cell.ActiveCell{Coord: coord, Record: rec}, nil
}

// requireInt extracts a required integer field.
func requireInt(root gjson.Result, path string) (int, error) {
	node := root.Get(path)
	if !node.Exists() || node.Type != gjson.Number {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedDocument, path)
	}
	return int(node.Int()), nil
}

// Save writes the document to path.
func Save(path string, d Document) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing map file %s: %w", path, err)
	}
	return nil
}

// LoadFile reads and validates the document at path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading map file %s: %w", path, err)
	}
	return Unmarshal(data)
}
