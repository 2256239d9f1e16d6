// Package renderer draws the grid editor to a display backend.
//
// The renderer is a pure consumer of the engine's read queries: it asks for
// bounds, per-cell records, and history position, and owns everything
// visual — layout, frame, grid dots, outline edges, and the status line.
package renderer

import (
	"fmt"

	"github.com/dshills/gridstorm/internal/engine/cell"
	"github.com/dshills/gridstorm/internal/renderer/backend"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// GridView is the read-only engine surface the renderer consumes.
type GridView interface {
	Rows() int
	Cols() int
	CellSize() int
	QueryActive(cell.Coord) (cell.Record, bool)
	ActiveCount() int
	CurrentLabel() string
	HistoryPointer() int
	HistoryLen() int
}

// Status carries per-frame UI state that is not part of the grid.
type Status struct {
	// PaintColor is the color the next toggle or drag will paint with.
	PaintColor core.Color

	// Message is a transient note shown at the end of the status line.
	Message string
}

// Renderer draws a GridView onto a Backend.
type Renderer struct {
	backend backend.Backend

	showGrid     bool
	defaultColor core.Color
	frameStyle   core.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGridDots draws a dim dot in every inactive cell.
func WithGridDots(enabled bool) Option {
	return func(r *Renderer) {
		r.showGrid = enabled
	}
}

// WithDefaultCellColor sets the color used for records without one.
func WithDefaultCellColor(c core.Color) Option {
	return func(r *Renderer) {
		r.defaultColor = c
	}
}

// New creates a renderer for the given backend.
func New(b backend.Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend:      b,
		showGrid:     true,
		defaultColor: core.MustParseHex("#4f94cd"),
		frameStyle:   core.DefaultStyle().Dim(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetGridDots toggles the inactive-cell dot overlay. Used when the
// configuration is reloaded while the editor is running.
func (r *Renderer) SetGridDots(enabled bool) {
	r.showGrid = enabled
}

// Render draws one full frame: frame, cells, and status line.
func (r *Renderer) Render(view GridView, status Status) {
	r.backend.Clear()

	layout := NewLayout(view.Rows(), view.Cols(), view.CellSize())
	r.drawFrame(layout)
	r.drawCells(layout, view)
	r.drawStatus(layout, view, status)

	r.backend.Show()
}

// drawFrame draws the box around the grid.
func (r *Renderer) drawFrame(l Layout) {
	right := l.OriginX + l.FrameWidth() - 1
	bottom := l.OriginY + l.FrameHeight() - 1

	r.backend.SetCell(l.OriginX, l.OriginY, core.Cell{Rune: '┌', Style: r.frameStyle})
	r.backend.SetCell(right, l.OriginY, core.Cell{Rune: '┐', Style: r.frameStyle})
	r.backend.SetCell(l.OriginX, bottom, core.Cell{Rune: '└', Style: r.frameStyle})
	r.backend.SetCell(right, bottom, core.Cell{Rune: '┘', Style: r.frameStyle})

	for x := l.OriginX + 1; x < right; x++ {
		r.backend.SetCell(x, l.OriginY, core.Cell{Rune: '─', Style: r.frameStyle})
		r.backend.SetCell(x, bottom, core.Cell{Rune: '─', Style: r.frameStyle})
	}
	for y := l.OriginY + 1; y < bottom; y++ {
		r.backend.SetCell(l.OriginX, y, core.Cell{Rune: '│', Style: r.frameStyle})
		r.backend.SetCell(right, y, core.Cell{Rune: '│', Style: r.frameStyle})
	}
}

// drawCells draws every grid cell, active or not.
func (r *Renderer) drawCells(l Layout, view GridView) {
	active := func(c cell.Coord) bool {
		_, ok := view.QueryActive(c)
		return ok
	}

	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			coord := cell.Coord{Row: row, Col: col}
			x, y := l.CellOrigin(coord)

			rec, ok := view.QueryActive(coord)
			if !ok {
				if r.showGrid {
					r.backend.SetCell(x, y, core.Cell{Rune: '·', Style: r.frameStyle})
				}
				continue
			}

			bg := r.recordColor(rec)
			style := core.DefaultStyle().WithBackground(bg)

			if !rec.Outline {
				r.backend.Fill(core.ScreenRect{
					Left:   x,
					Top:    y,
					Right:  x + l.CellWidth,
					Bottom: y + 1,
				}, core.Cell{Rune: ' ', Style: style})
				continue
			}

			mask := edges(active, coord)
			edgeStyle := style.WithForeground(edgeColor(bg))
			for i := 0; i < l.CellWidth; i++ {
				r.backend.SetCell(x+i, y, core.Cell{
					Rune:  edgeRune(mask, i, l.CellWidth),
					Style: edgeStyle,
				})
			}
		}
	}
}

// drawStatus draws the status line under the frame.
func (r *Renderer) drawStatus(l Layout, view GridView, status Status) {
	text := fmt.Sprintf("%s  [%d/%d]  %d cells  %dx%d  paint %s",
		view.CurrentLabel(),
		view.HistoryPointer()+1, view.HistoryLen(),
		view.ActiveCount(),
		view.Rows(), view.Cols(),
		status.PaintColor,
	)
	if status.Message != "" {
		text += "  " + status.Message
	}

	y := l.StatusY()
	style := core.DefaultStyle()
	// Range over a string yields byte offsets; track the screen column
	// separately so multi-byte runes in labels or paths stay contiguous.
	col := l.OriginX
	for _, ch := range text {
		r.backend.SetCell(col, y, core.Cell{Rune: ch, Style: style})
		col++
	}
}

// recordColor resolves a record's paint color, falling back to the default
// for records without one or with an unparsable value.
func (r *Renderer) recordColor(rec cell.Record) core.Color {
	if rec.Color == "" {
		return r.defaultColor
	}
	c, err := core.ParseHex(rec.Color)
	if err != nil {
		return r.defaultColor
	}
	return c
}

// edgeColor picks a readable outline color over the cell background.
func edgeColor(bg core.Color) core.Color {
	if bg.Luminance() > 0.5 {
		return bg.Darken(0.5)
	}
	return bg.Lighten(0.5)
}

// edgeRune picks the rune for screen column i of an outlined cell.
// The left and right columns show vertical edges; interior columns show
// the horizontal ones, upper edge winning when both are exposed.
func edgeRune(mask EdgeMask, i, width int) rune {
	switch {
	case i == 0 && mask.Has(EdgeLeft):
		return '▎'
	case i == width-1 && mask.Has(EdgeRight):
		return '▕'
	case mask.Has(EdgeUp):
		return '▔'
	case mask.Has(EdgeDown):
		return '▁'
	default:
		return ' '
	}
}
