package engine

// Default configuration values.
const (
	DefaultRows              = 10
	DefaultCols              = 10
	DefaultCellSize          = 2
	DefaultMaxHistoryEntries = 1000
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithRows sets the initial row count.
func WithRows(rows int) Option {
	return func(e *Engine) {
		if rows > 0 {
			e.rows = rows
		}
	}
}

// WithCols sets the initial column count.
func WithCols(cols int) Option {
	return func(e *Engine) {
		if cols > 0 {
			e.cols = cols
		}
	}
}

// WithCellSize sets the rendering cell size.
func WithCellSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.cellSize = size
		}
	}
}

// WithMaxHistoryEntries bounds the history log length.
// Zero means unbounded.
func WithMaxHistoryEntries(max int) Option {
	return func(e *Engine) {
		if max >= 0 {
			e.maxHistoryEntries = max
		}
	}
}
