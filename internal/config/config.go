package config

import (
	"fmt"

	"github.com/dshills/gridstorm/internal/renderer/core"
)

// Config is the full editor configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	UI      UIConfig      `toml:"ui"`
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`
}

// GridConfig configures the grid dimensions.
type GridConfig struct {
	// Rows is the initial row count.
	Rows int `toml:"rows"`

	// Cols is the initial column count.
	Cols int `toml:"cols"`

	// CellSize is the cell width in screen columns.
	CellSize int `toml:"cellSize"`
}

// UIConfig configures the renderer.
type UIConfig struct {
	// Palette is the cycle of paint colors, as "#RRGGBB" strings.
	Palette []string `toml:"palette"`

	// GridDots draws a dim dot in every inactive cell.
	GridDots bool `toml:"gridDots"`
}

// HistoryConfig configures the undo log.
type HistoryConfig struct {
	// MaxEntries bounds the snapshot log; zero means unbounded.
	MaxEntries int `toml:"maxEntries"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:     10,
			Cols:     10,
			CellSize: 2,
		},
		UI: UIConfig{
			Palette: []string{
				"#4f94cd", // steel blue
				"#cd5c5c", // indian red
				"#8fbc8f", // dark sea green
				"#daa520", // goldenrod
				"#9370db", // medium purple
				"#2f4f4f", // dark slate
			},
			GridDots: true,
		},
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the editor cannot run with.
func (c Config) Validate() error {
	if c.Grid.Rows < 1 {
		return fmt.Errorf("%w: grid.rows must be positive, got %d", ErrInvalidConfig, c.Grid.Rows)
	}
	if c.Grid.Cols < 1 {
		return fmt.Errorf("%w: grid.cols must be positive, got %d", ErrInvalidConfig, c.Grid.Cols)
	}
	if c.Grid.CellSize < 1 {
		return fmt.Errorf("%w: grid.cellSize must be positive, got %d", ErrInvalidConfig, c.Grid.CellSize)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.maxEntries must not be negative, got %d", ErrInvalidConfig, c.History.MaxEntries)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}

	if len(c.UI.Palette) == 0 {
		return fmt.Errorf("%w: ui.palette must not be empty", ErrInvalidConfig)
	}
	for _, hex := range c.UI.Palette {
		if _, err := core.ParseHex(hex); err != nil {
			return fmt.Errorf("%w: ui.palette: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}
