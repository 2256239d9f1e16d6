package history

import (
	"sync"

	"github.com/dshills/gridstorm/internal/engine/cell"
)

// InitialLabel is the label of the seed snapshot every log starts with.
const InitialLabel = "new grid"

// Log manages the snapshot sequence and current pointer for one editing
// session. All methods are safe for concurrent use, though typical use is
// single-threaded.
type Log struct {
	mu         sync.Mutex
	entries    []*entry
	pointer    int
	maxEntries int
}

// NewLog creates a log seeded with an empty snapshot.
// maxEntries bounds the sequence length; zero or negative means unbounded.
func NewLog(maxEntries int) *Log {
	return &Log{
		entries: []*entry{{
			kind:  EntryNormal,
			label: InitialLabel,
			store: cell.NewStore(),
		}},
		maxEntries: maxEntries,
	}
}

// Commit appends a snapshot of store with the given label and makes it
// current. Any entries beyond the pointer are discarded first, so a commit
// after undo prunes the redo branch. The store is cloned; the caller may
// keep mutating its copy.
func (l *Log) Commit(label string, store *cell.Store) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.commitLocked(&entry{
		kind:  EntryNormal,
		label: label,
		store: store.Clone(),
	})
}

// CommitClear appends a single tagged clear entry: one empty snapshot for
// the whole clear. Undoing a clear therefore takes exactly one step, and
// the previous snapshot already holds the pre-clear state.
func (l *Log) CommitClear(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.commitLocked(&entry{
		kind:  EntryClear,
		label: label,
		store: cell.NewStore(),
	})
}

// commitLocked prunes the redo branch, appends e, advances the pointer,
// and trims the oldest entries past the configured bound.
func (l *Log) commitLocked(e *entry) {
	l.entries = append(l.entries[:l.pointer+1], e)
	l.pointer = len(l.entries) - 1

	if l.maxEntries > 0 && len(l.entries) > l.maxEntries {
		excess := len(l.entries) - l.maxEntries
		l.entries = l.entries[excess:]
		l.pointer -= excess
		if l.pointer < 0 {
			l.pointer = 0
		}
	}
}

// Undo moves the pointer back one snapshot.
// It reports whether the pointer moved; at the oldest snapshot it is a
// no-op.
func (l *Log) Undo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pointer == 0 {
		return false
	}
	l.pointer--
	return true
}

// Redo moves the pointer forward one snapshot.
// It reports whether the pointer moved; at the newest snapshot it is a
// no-op.
func (l *Log) Redo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pointer >= len(l.entries)-1 {
		return false
	}
	l.pointer++
	return true
}

// JumpTo sets the pointer to an arbitrary valid index.
// Out-of-range indexes leave the log unchanged and report false.
func (l *Log) JumpTo(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.entries) {
		return false
	}
	l.pointer = index
	return true
}

// Current returns the store of the snapshot in effect.
// The returned store must be treated as read-only; clone it before
// mutating.
func (l *Log) Current() *cell.Store {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[l.pointer].store
}

// CurrentLabel returns the label of the snapshot in effect.
func (l *Log) CurrentLabel() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[l.pointer].label
}

// CurrentKind returns the kind of the snapshot in effect.
func (l *Log) CurrentKind() EntryKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[l.pointer].kind
}

// CanUndo reports whether the pointer can move back.
func (l *Log) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pointer > 0
}

// CanRedo reports whether the pointer can move forward.
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pointer < len(l.entries)-1
}

// Pointer returns the index of the snapshot in effect.
func (l *Log) Pointer() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pointer
}

// Len returns the number of snapshots in the log.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns one EntryInfo per snapshot, oldest first.
func (l *Log) Entries() []EntryInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]EntryInfo, len(l.entries))
	for i, e := range l.entries {
		out[i] = EntryInfo{
			Label: e.label,
			Size:  e.store.Len(),
			Kind:  e.kind,
		}
	}
	return out
}
