// Package cell provides the sparse cell store that holds the active cells
// of a grid, keyed by coordinate.
//
// A Store is the ground-truth state for one point in time. Stores have value
// semantics: mutations always happen on a working copy obtained via Clone,
// so a Store held by the history log is never aliased by a later edit.
//
// # Coordinates
//
// Coord is a composite (Row, Col) key with a total order. It replaces
// string-concatenated keys so lookups never round-trip through parsing.
//
// # Toggle semantics
//
// Toggle removes a record only when the stored record equals the incoming
// one. Toggling with a different record overwrites instead of removing, so
// repainting an active cell with a new color keeps it active.
//
// # Bounds clipping
//
// Clip reconciles a Store against grid bounds, discarding out-of-range
// records. It is a pure function and idempotent; callers decide whether the
// result becomes a history commit.
package cell
