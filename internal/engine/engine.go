package engine

import (
	"fmt"
	"sync"

	"github.com/dshills/gridstorm/internal/engine/cell"
	"github.com/dshills/gridstorm/internal/engine/fill"
	"github.com/dshills/gridstorm/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Coord identifies a grid cell.
	Coord = cell.Coord

	// Record holds the attributes of an active cell.
	Record = cell.Record

	// ActiveCell pairs a coordinate with its record.
	ActiveCell = cell.ActiveCell

	// EntryInfo describes one history entry.
	EntryInfo = history.EntryInfo
)

// Engine is the facade for the grid editor engine.
// It owns the history log and the grid bounds and serializes all access.
//
// All operations are safe for concurrent use, although an editing session
// is expected to drive the engine from a single goroutine.
type Engine struct {
	mu sync.RWMutex

	rows     int
	cols     int
	cellSize int

	maxHistoryEntries int

	log *history.Log
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		rows:              DefaultRows,
		cols:              DefaultCols,
		cellSize:          DefaultCellSize,
		maxHistoryEntries: DefaultMaxHistoryEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = history.NewLog(e.maxHistoryEntries)
	return e
}

// ============================================================================
// Grid configuration
// ============================================================================

// Rows returns the current row count.
func (e *Engine) Rows() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rows
}

// Cols returns the current column count.
func (e *Engine) Cols() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cols
}

// CellSize returns the rendering cell size. It is not part of the engine's
// invariants; the renderer decides what to do with it.
func (e *Engine) CellSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cellSize
}

// SetCellSize updates the rendering cell size. Non-positive values are
// ignored. Cell size changes are not history-producing.
func (e *Engine) SetCellSize(size int) {
	if size <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cellSize = size
}

// Resize sets the grid bounds. Non-positive bounds are ignored.
// Shrinking clamps the current snapshot; if cells fall outside the new
// bounds the clamped state is committed as one history entry. Growing
// never produces a commit.
//
// Bounds are not part of snapshots, so undoing past a shrinking resize
// restores the dropped cells while the bounds stay shrunk; see Undo.
func (e *Engine) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.rows = rows
	e.cols = cols

	current := e.log.Current()
	clamped := cell.Clip(current, rows, cols)
	if clamped.Equal(current) {
		return
	}
	e.log.Commit(fmt.Sprintf("resize %dx%d", rows, cols), clamped)
}

// ============================================================================
// Mutating entry points
// ============================================================================

// ToggleCell toggles the cell at coord with the given record and commits
// the result. A coordinate outside the grid is a no-op.
//
// Toggling with the exact record the cell already holds removes it;
// toggling with a different record repaints the cell in place.
func (e *Engine) ToggleCell(coord Coord, rec Record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !coord.In(e.rows, e.cols) {
		return
	}

	working := e.log.Current().Clone()
	working.Toggle(coord, rec)
	e.log.Commit(fmt.Sprintf("toggle %s", coord), working)
}

// PaintCell sets the cell at coord unconditionally and commits.
// Unlike ToggleCell, painting a cell with the record it already holds is a
// no-op rather than an un-set; drag painting uses this so that crossing a
// cell twice never erases it.
func (e *Engine) PaintCell(coord Coord, rec Record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !coord.In(e.rows, e.cols) {
		return
	}

	working := e.log.Current().Clone()
	if existing, ok := working.Get(coord); ok && existing == rec {
		return
	}
	working.Set(coord, rec)
	e.log.Commit(fmt.Sprintf("paint %s", coord), working)
}

// ClearAll removes every active cell as a single composite history entry.
// Clearing an already-empty grid is a no-op.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.log.Current().IsEmpty() {
		return
	}
	e.log.CommitClear("clear all")
}

// ClampToBounds reconciles the current snapshot against the given bounds
// and commits the result. If no cell is out of range, nothing is committed.
// The engine's configured bounds are not changed; use Resize for that.
func (e *Engine) ClampToBounds(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.log.Current()
	clamped := cell.Clip(current, rows, cols)
	if clamped.Equal(current) {
		return
	}
	e.log.Commit(fmt.Sprintf("clamp to %dx%d", rows, cols), clamped)
}

// FillEnclosed paints every enclosed region of inactive cells with rec and
// commits the result. If the grid has no enclosed inactive region, nothing
// is committed.
func (e *Engine) FillEnclosed(rec Record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.log.Current()
	filled := fill.Enclosed(current, e.rows, e.cols, rec)
	if filled.Equal(current) {
		return
	}
	e.log.Commit("fill enclosed", filled)
}

// StampCells overlays the given cells onto the current snapshot as one
// commit. Out-of-range cells are skipped. If nothing changes, nothing is
// committed. Pattern scripts use this to apply a whole stamp as a single
// undo step.
func (e *Engine) StampCells(label string, cells []ActiveCell) {
	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.log.Current().Clone()
	changed := false
	for _, c := range cells {
		if !c.Coord.In(e.rows, e.cols) {
			continue
		}
		if existing, ok := working.Get(c.Coord); ok && existing == c.Record {
			continue
		}
		working.Set(c.Coord, c.Record)
		changed = true
	}
	if !changed {
		return
	}
	e.log.Commit(label, working)
}

// ReplaceAll swaps the whole grid state in one commit: bounds, cell size,
// and cells. Out-of-range cells are skipped. Document loading uses this so
// a load is a single undo step.
func (e *Engine) ReplaceAll(label string, rows, cols, cellSize int, cells []ActiveCell) {
	if rows <= 0 || cols <= 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.rows = rows
	e.cols = cols
	if cellSize > 0 {
		e.cellSize = cellSize
	}

	store := cell.NewStore()
	for _, c := range cells {
		if c.Coord.In(rows, cols) {
			store.Set(c.Coord, c.Record)
		}
	}
	e.log.Commit(label, store)
}

// ============================================================================
// History navigation
// ============================================================================

// Undo steps the history pointer back one snapshot.
// It reports whether anything changed.
//
// Snapshots record cells only, never bounds. Undoing past a shrinking
// resize therefore restores cells outside the current bounds: they are
// retained in the store and counted by the read queries, stay invisible
// while out of range, and reappear if the grid grows again. ClampToBounds
// discards them explicitly.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Undo()
}

// Redo steps the history pointer forward one snapshot.
// It reports whether anything changed.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Redo()
}

// JumpTo sets the history pointer to an arbitrary entry.
// Out-of-range indexes are a no-op and report false.
func (e *Engine) JumpTo(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.JumpTo(index)
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.CanRedo()
}

// ============================================================================
// Read operations
// ============================================================================

// QueryActive returns the record at coord and whether the cell is active.
func (e *Engine) QueryActive(coord Coord) (Record, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Current().Get(coord)
}

// EnumerateActive returns every active cell in row-major order.
func (e *Engine) EnumerateActive() []ActiveCell {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Current().Cells()
}

// ActiveCount returns the number of active cells in the current snapshot.
func (e *Engine) ActiveCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Current().Len()
}

// CurrentLabel returns the label of the current snapshot.
func (e *Engine) CurrentLabel() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.CurrentLabel()
}

// CurrentKind returns the kind of the current history entry, letting
// callers distinguish a clear step from an ordinary edit.
func (e *Engine) CurrentKind() history.EntryKind {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.CurrentKind()
}

// HistoryList returns label, size, and kind for every history entry,
// oldest first. It feeds undo/redo list UIs.
func (e *Engine) HistoryList() []EntryInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Entries()
}

// HistoryPointer returns the index of the current history entry.
func (e *Engine) HistoryPointer() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Pointer()
}

// HistoryLen returns the number of history entries.
func (e *Engine) HistoryLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Len()
}
