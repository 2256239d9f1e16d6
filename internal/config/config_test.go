package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != Default().Grid.Rows {
		t.Errorf("Rows = %d, want default %d", cfg.Grid.Rows, Default().Grid.Rows)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeFile(t, "gridstorm.toml", `
[grid]
rows = 16
cols = 12

[ui]
gridDots = false
palette = ["#ff0000", "#00ff00"]

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != 16 || cfg.Grid.Cols != 12 {
		t.Errorf("grid = %dx%d, want 16x12", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Grid.CellSize != Default().Grid.CellSize {
		t.Error("unset fields should keep defaults")
	}
	if cfg.UI.GridDots {
		t.Error("gridDots should be overridden to false")
	}
	if len(cfg.UI.Palette) != 2 {
		t.Errorf("palette length = %d, want 2", len(cfg.UI.Palette))
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeFile(t, "bad.toml", "[grid\nrows = ")
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gridstorm.toml", "[grid]\nrows = 16\n")

	t.Setenv("GRIDSTORM_ROWS", "4")
	t.Setenv("GRIDSTORM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Rows != 4 {
		t.Errorf("Rows = %d, want env override 4", cfg.Grid.Rows)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
}

func TestEnvBadInteger(t *testing.T) {
	t.Setenv("GRIDSTORM_COLS", "lots")
	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Grid.Cols = -2 }},
		{"zero cell size", func(c *Config) { c.Grid.CellSize = 0 }},
		{"negative history", func(c *Config) { c.History.MaxEntries = -1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty palette", func(c *Config) { c.UI.Palette = nil }},
		{"bad palette color", func(c *Config) { c.UI.Palette = []string{"red"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
