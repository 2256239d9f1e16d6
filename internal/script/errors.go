package script

import "errors"

// Sentinel errors for pattern execution.
var (
	// ErrScriptFailed indicates the Lua script raised an error.
	ErrScriptFailed = errors.New("pattern script failed")

	// ErrScriptTimeout indicates the script exceeded its execution budget.
	ErrScriptTimeout = errors.New("pattern script timed out")
)
