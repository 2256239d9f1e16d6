package backend

import (
	"testing"

	"github.com/dshills/gridstorm/internal/renderer/core"
)

func TestNullBackendSetAndGet(t *testing.T) {
	b := NewNullBackend(10, 5)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cell := core.Cell{Rune: 'x', Style: core.DefaultStyle()}
	b.SetCell(3, 2, cell)

	if got := b.CellAt(3, 2); got.Rune != 'x' {
		t.Errorf("CellAt(3,2).Rune = %q, want 'x'", got.Rune)
	}
	if got := b.CellAt(0, 0); got.Rune != ' ' {
		t.Errorf("CellAt(0,0).Rune = %q, want blank", got.Rune)
	}
}

func TestNullBackendOutOfRangeIgnored(t *testing.T) {
	b := NewNullBackend(4, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Must not panic.
	b.SetCell(-1, 0, core.EmptyCell())
	b.SetCell(0, -1, core.EmptyCell())
	b.SetCell(4, 0, core.EmptyCell())
	b.SetCell(0, 4, core.EmptyCell())

	if got := b.CellAt(99, 99); got.Rune != ' ' {
		t.Errorf("CellAt out of range = %q, want blank", got.Rune)
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(6, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	b.Fill(core.ScreenRect{Left: 1, Top: 1, Right: 3, Bottom: 3}, core.Cell{Rune: '#'})

	if b.CellAt(1, 1).Rune != '#' || b.CellAt(2, 2).Rune != '#' {
		t.Error("fill rect interior not set")
	}
	if b.CellAt(3, 1).Rune == '#' || b.CellAt(1, 3).Rune == '#' {
		t.Error("fill leaked past exclusive bounds")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(4, 4)
	ev := Event{Type: EventKey, Key: KeyRune, Rune: 'q'}
	b.PostEvent(ev)

	got := b.PollEvent()
	if got.Type != EventKey || got.Rune != 'q' {
		t.Errorf("PollEvent() = %+v, want posted key event", got)
	}
}

func TestModMaskHas(t *testing.T) {
	mod := ModCtrl | ModShift
	if !mod.Has(ModCtrl) || !mod.Has(ModShift) {
		t.Error("mask should contain ctrl and shift")
	}
	if mod.Has(ModAlt) {
		t.Error("mask should not contain alt")
	}
}
