package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridstorm/internal/engine/cell"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// DefaultTimeout bounds a single pattern execution.
const DefaultTimeout = 2 * time.Second

// Runner executes pattern scripts for a fixed grid size.
type Runner struct {
	rows    int
	cols    int
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout overrides the execution budget for a script.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner creates a runner for a rows x cols grid.
func NewRunner(rows, cols int, opts ...Option) *Runner {
	r := &Runner{
		rows:    rows,
		cols:    cols,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile loads and executes the pattern script at path.
func (r *Runner) RunFile(path string) ([]cell.ActiveCell, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern script %s: %w", path, err)
	}
	return r.Run(string(code))
}

// Run executes a pattern script and returns the cells it set,
// sorted row-major. Cells set more than once keep the last value.
func (r *Runner) Run(code string) ([]cell.ActiveCell, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibraries(L)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	L.SetContext(ctx)

	set := make(map[cell.Coord]cell.Record)

	L.SetGlobal("rows", lua.LNumber(r.rows))
	L.SetGlobal("cols", lua.LNumber(r.cols))
	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		row := L.CheckInt(1)
		col := L.CheckInt(2)
		color := L.OptString(3, "")
		outline := L.OptBool(4, false)

		coord := cell.Coord{Row: row, Col: col}
		if !coord.In(r.rows, r.cols) {
			return 0
		}
		if color != "" {
			if _, err := core.ParseHex(color); err != nil {
				L.RaiseError("invalid color %q", color)
				return 0
			}
		}
		set[coord] = cell.Record{Color: color, Outline: outline}
		return 0
	}))
	L.SetGlobal("unset", L.NewFunction(func(L *lua.LState) int {
		coord := cell.Coord{Row: L.CheckInt(1), Col: L.CheckInt(2)}
		delete(set, coord)
		return 0
	}))

	if err := L.DoString(code); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %v", ErrScriptTimeout, r.timeout)
		}
		var apiErr *lua.ApiError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %v", ErrScriptFailed, apiErr.Object)
		}
		return nil, fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}

	cells := make([]cell.ActiveCell, 0, len(set))
	for coord, rec := range set {
		cells = append(cells, cell.ActiveCell{Coord: coord, Record: rec})
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Coord.Less(cells[j].Coord)
	})
	return cells, nil
}

// openSafeLibraries opens only the Lua libraries safe for patterns.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base brings load/loadstring/dofile along; patterns have no
	// business loading further code.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}
