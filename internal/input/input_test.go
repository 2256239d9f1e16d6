package input

import (
	"testing"

	"github.com/dshills/gridstorm/internal/engine/cell"
	"github.com/dshills/gridstorm/internal/renderer"
	"github.com/dshills/gridstorm/internal/renderer/backend"
)

func keyEvent(key backend.Key, r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key, Rune: r}
}

func mouseEvent(x, y int, button backend.MouseButton) backend.Event {
	return backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y, MouseButton: button}
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name string
		ev   backend.Event
		want Action
	}{
		{"q quits", keyEvent(backend.KeyRune, 'q'), ActionQuit},
		{"escape quits", keyEvent(backend.KeyEscape, 0), ActionQuit},
		{"u undoes", keyEvent(backend.KeyRune, 'u'), ActionUndo},
		{"ctrl+z undoes", keyEvent(backend.KeyCtrlZ, 0), ActionUndo},
		{"f fills", keyEvent(backend.KeyRune, 'f'), ActionFill},
		{"down grows rows", keyEvent(backend.KeyDown, 0), ActionRowsInc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Resolve(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("Resolve() = %q, %v, want %q", got, ok, tt.want)
			}
		})
	}
}

func TestResolveUnbound(t *testing.T) {
	b := DefaultBindings()
	if _, ok := b.Resolve(keyEvent(backend.KeyRune, 'Z')); ok {
		t.Error("unbound rune should not resolve")
	}
	if _, ok := b.Resolve(backend.Event{Type: backend.EventResize}); ok {
		t.Error("non-key events should not resolve")
	}
}

func TestBindOverrides(t *testing.T) {
	b := DefaultBindings()

	if err := b.Bind("x", ActionClear); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got, ok := b.Resolve(keyEvent(backend.KeyRune, 'x')); !ok || got != ActionClear {
		t.Errorf("Resolve('x') = %q, %v", got, ok)
	}

	if err := b.Bind("ctrl+l", ActionLoad); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got, ok := b.Resolve(keyEvent(backend.KeyCtrlL, 0)); !ok || got != ActionLoad {
		t.Errorf("Resolve(ctrl+l) = %q, %v", got, ok)
	}

	if err := b.Bind("up", ActionUndo); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got, _ := b.Resolve(keyEvent(backend.KeyUp, 0)); got != ActionUndo {
		t.Errorf("Resolve(up) = %q, want rebound action", got)
	}
}

func TestBindRejectsBadChords(t *testing.T) {
	b := DefaultBindings()
	for _, chord := range []string{"", "ctrl+?", "longname", "ctrl+"} {
		if err := b.Bind(chord, ActionQuit); err == nil {
			t.Errorf("Bind(%q) should fail", chord)
		}
	}
}

func TestParseAction(t *testing.T) {
	if a, ok := ParseAction("fill"); !ok || a != ActionFill {
		t.Errorf("ParseAction(fill) = %q, %v", a, ok)
	}
	if _, ok := ParseAction("launch-missiles"); ok {
		t.Error("unknown action names should not parse")
	}
}

func TestMouseClickTogglesThenDragPaints(t *testing.T) {
	m := NewMouse()
	layout := renderer.NewLayout(3, 3, 2)

	// Press on (0,0).
	coord, action := m.Handle(mouseEvent(1, 1, backend.MouseLeft), layout)
	if action != MouseActionToggle || coord != (cell.Coord{Row: 0, Col: 0}) {
		t.Fatalf("press = %v, %v, want toggle (0,0)", coord, action)
	}

	// Drag within the same cell: nothing.
	_, action = m.Handle(mouseEvent(2, 1, backend.MouseLeft), layout)
	if action != MouseActionNone {
		t.Errorf("same-cell drag = %v, want none", action)
	}

	// Drag to the next cell: paint.
	coord, action = m.Handle(mouseEvent(3, 1, backend.MouseLeft), layout)
	if action != MouseActionPaint || coord != (cell.Coord{Row: 0, Col: 1}) {
		t.Errorf("drag = %v, %v, want paint (0,1)", coord, action)
	}

	// Release ends the drag; the next press toggles again.
	_, action = m.Handle(mouseEvent(3, 1, backend.MouseNone), layout)
	if action != MouseActionNone || m.Dragging() {
		t.Error("release should end the drag")
	}
	_, action = m.Handle(mouseEvent(3, 1, backend.MouseLeft), layout)
	if action != MouseActionToggle {
		t.Errorf("new press = %v, want toggle", action)
	}
}

func TestMouseOffGridKeepsDrag(t *testing.T) {
	m := NewMouse()
	layout := renderer.NewLayout(2, 2, 2)

	m.Handle(mouseEvent(1, 1, backend.MouseLeft), layout)

	// Wander onto the frame.
	_, action := m.Handle(mouseEvent(0, 0, backend.MouseLeft), layout)
	if action != MouseActionNone {
		t.Errorf("off-grid drag = %v, want none", action)
	}
	if !m.Dragging() {
		t.Error("off-grid motion must not end the drag")
	}

	// Re-enter on a different cell: paint resumes.
	coord, action := m.Handle(mouseEvent(1, 2, backend.MouseLeft), layout)
	if action != MouseActionPaint || coord != (cell.Coord{Row: 1, Col: 0}) {
		t.Errorf("re-entry = %v, %v, want paint (1,0)", coord, action)
	}
}

func TestMouseIgnoresOtherButtons(t *testing.T) {
	m := NewMouse()
	layout := renderer.NewLayout(2, 2, 2)

	_, action := m.Handle(mouseEvent(1, 1, backend.MouseRight), layout)
	if action != MouseActionNone {
		t.Errorf("right click = %v, want none", action)
	}
}
