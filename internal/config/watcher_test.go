package config

import (
	"os"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "gridstorm.toml", "[grid]\nrows = 5\n")

	reloaded := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("[grid]\nrows = 8\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Grid.Rows != 8 {
			t.Errorf("reloaded Rows = %d, want 8", cfg.Grid.Rows)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherDropsInvalidConfig(t *testing.T) {
	path := writeFile(t, "gridstorm.toml", "[grid]\nrows = 5\n")

	reloaded := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("[grid]\nrows = 0\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		t.Errorf("invalid config was delivered: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
		// No delivery is the expected outcome.
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeFile(t, "gridstorm.toml", "[grid]\nrows = 5\n")

	w, err := Watch(path, func(Config) {})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
