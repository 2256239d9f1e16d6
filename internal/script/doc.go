// Package script runs Lua pattern generators against the grid.
//
// A pattern script receives the grid dimensions as the globals rows and
// cols, and calls set(row, col, color [, outline]) for every cell it wants
// activated. Out-of-range calls are ignored. The collected cells are
// returned to the caller, which applies them as a single grid edit.
//
// Scripts execute in a restricted Lua state: the base, table, string and
// math libraries are available, io/os/debug are not, and a timeout bounds
// runaway scripts.
package script
