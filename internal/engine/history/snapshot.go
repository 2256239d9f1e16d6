package history

import "github.com/dshills/gridstorm/internal/engine/cell"

// EntryKind distinguishes ordinary commits from composite clear entries.
type EntryKind uint8

const (
	// EntryNormal is a regular single-action commit.
	EntryNormal EntryKind = iota
	// EntryClear is a clear-all commit.
	EntryClear
)

// String returns the string representation of the entry kind.
func (k EntryKind) String() string {
	switch k {
	case EntryNormal:
		return "normal"
	case EntryClear:
		return "clear"
	default:
		return "unknown"
	}
}

// entry is one snapshot in the log.
// The store is never mutated after the entry is appended.
type entry struct {
	kind  EntryKind
	label string
	store *cell.Store
}

// EntryInfo describes one log entry for history list UIs.
type EntryInfo struct {
	// Label describes the action that produced the snapshot.
	Label string

	// Size is the number of active cells in the snapshot.
	Size int

	// Kind reports whether the entry is a normal commit or a clear.
	Kind EntryKind
}
