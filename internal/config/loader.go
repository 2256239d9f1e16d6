package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "GRIDSTORM_"

// Load builds the effective configuration: defaults, then the TOML file at
// path (missing file is not an error), then environment overrides. The
// result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile merges the TOML file at path into cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // missing config file is fine, defaults apply
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv merges GRIDSTORM_* environment variables into cfg.
func applyEnv(cfg *Config) error {
	if err := envInt("ROWS", &cfg.Grid.Rows); err != nil {
		return err
	}
	if err := envInt("COLS", &cfg.Grid.Cols); err != nil {
		return err
	}
	if err := envInt("CELL_SIZE", &cfg.Grid.CellSize); err != nil {
		return err
	}
	if err := envInt("MAX_HISTORY", &cfg.History.MaxEntries); err != nil {
		return err
	}
	if err := envBool("GRID_DOTS", &cfg.UI.GridDots); err != nil {
		return err
	}

	if val, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = val
	}
	return nil
}

// envInt overrides dst with the named environment variable if set.
func envInt(name string, dst *int) error {
	val, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, name, val)
	}
	*dst = n
	return nil
}

// envBool overrides dst with the named environment variable if set.
func envBool(name string, dst *bool) error {
	val, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalidConfig, EnvPrefix, name, val)
	}
	*dst = b
	return nil
}
