package input

import (
	"github.com/dshills/gridstorm/internal/engine/cell"
	"github.com/dshills/gridstorm/internal/renderer"
	"github.com/dshills/gridstorm/internal/renderer/backend"
)

// MouseAction is what a mouse event asks the editor to do with a cell.
type MouseAction int

const (
	// MouseActionNone means the event hit nothing actionable.
	MouseActionNone MouseAction = iota

	// MouseActionToggle toggles the cell (initial click).
	MouseActionToggle

	// MouseActionPaint paints the cell unconditionally (drag).
	MouseActionPaint
)

// Mouse tracks press/drag state across mouse events.
//
// The first cell under a fresh left press is toggled; every new cell the
// pointer crosses while the button stays down is painted. Painting never
// un-sets, so a drag that crosses a cell twice leaves it active.
type Mouse struct {
	dragging bool
	last     cell.Coord
	hasLast  bool
}

// NewMouse creates a mouse state tracker.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Handle consumes a mouse event and returns the grid cell it acts on.
func (m *Mouse) Handle(ev backend.Event, layout renderer.Layout) (cell.Coord, MouseAction) {
	if ev.Type != backend.EventMouse {
		return cell.Coord{}, MouseActionNone
	}

	if ev.MouseButton != backend.MouseLeft {
		m.dragging = false
		m.hasLast = false
		return cell.Coord{}, MouseActionNone
	}

	coord, ok := layout.HitTest(ev.MouseX, ev.MouseY)
	if !ok {
		// Off-grid positions keep the drag alive so painting resumes
		// when the pointer re-enters the grid.
		return cell.Coord{}, MouseActionNone
	}

	if !m.dragging {
		m.dragging = true
		m.last = coord
		m.hasLast = true
		return coord, MouseActionToggle
	}

	if m.hasLast && coord == m.last {
		return cell.Coord{}, MouseActionNone
	}
	m.last = coord
	m.hasLast = true
	return coord, MouseActionPaint
}

// Dragging reports whether a left-button drag is in progress.
func (m *Mouse) Dragging() bool {
	return m.dragging
}
