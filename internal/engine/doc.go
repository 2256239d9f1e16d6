// Package engine implements the grid cell-state engine: the authoritative
// state of an interactive grid editor.
//
// The engine combines three subpackages behind one facade:
//
//   - cell: the sparse coordinate-to-record store with value semantics
//   - fill: enclosed-region flood fill
//   - history: the pointer-addressed undo/redo snapshot log
//
// Every mutating entry point (ToggleCell, ClearAll, ClampToBounds,
// FillEnclosed, Resize, StampCells, ReplaceAll) derives a working copy from
// the current snapshot, mutates it, and commits the result to the history
// log — or does nothing at all when the action would not change state.
// Read paths (QueryActive, EnumerateActive, CurrentLabel, HistoryList)
// always answer from the current snapshot.
//
// Engine operations are total: out-of-range coordinates and history indexes
// are no-ops, never errors. Collaborators such as renderers and input
// handlers rely on this and do no range checking of their own.
package engine
