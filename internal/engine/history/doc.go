// Package history provides the undo/redo log for the grid engine.
//
// The log is an ordered sequence of immutable snapshots plus a pointer to
// the snapshot currently in effect. Every state-changing action goes through
// Commit, which prunes any redo branch beyond the pointer, appends the new
// snapshot, and advances the pointer. Undo and redo only move the pointer;
// they never modify snapshots.
//
// # Snapshots
//
// A snapshot pairs a full copy of the cell store with a human-readable
// label. Commit clones the store it is given, so no snapshot ever aliases a
// store a later edit could mutate.
//
// # Invariants
//
//   - 0 <= pointer < len(entries)
//   - len(entries) >= 1 (a log always starts with an empty snapshot)
//   - the sequence grows only via Commit and shrinks only via Commit's
//     branch pruning and oldest-entry trimming
//
// # Clear entries
//
// Clearing the grid is a single tagged entry holding one empty snapshot.
// A single Undo from a clear entry lands on the previous snapshot, which is
// exactly the pre-clear state; no look-ahead at neighboring entries is
// needed. The tag lets consumers label clear steps in history views.
//
// # Trimming
//
// Logs created with a positive max entry count drop their oldest entries
// when the sequence grows past the limit, the same way the editor's text
// history bounds its undo stack. Trimming keeps at least one entry and
// shifts the pointer so the current snapshot is unaffected.
package history
