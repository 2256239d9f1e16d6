package app

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/engine"
	"github.com/dshills/gridstorm/internal/input"
	"github.com/dshills/gridstorm/internal/renderer"
	"github.com/dshills/gridstorm/internal/renderer/backend"
	"github.com/dshills/gridstorm/internal/renderer/core"
	"github.com/dshills/gridstorm/internal/store"
)

// Application is the central coordinator for all editor components.
// It owns the engine, renderer and input state and runs the event loop.
type Application struct {
	mu sync.Mutex

	// Core components
	cfg      config.Config
	engine   *engine.Engine
	renderer *renderer.Renderer
	backend  backend.Backend

	// Input state
	bindings *input.Bindings
	mouse    *input.Mouse

	// Paint state
	palette  []string
	paintIdx int
	outline  bool

	// Current document
	docID   uuid.UUID
	mapPath string

	// Transient status line message
	message string

	// Configuration reload
	watcher   *config.Watcher
	pendingMu sync.Mutex
	pending   *config.Config

	logger  *Logger
	metrics *Metrics

	running atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the TOML configuration file.
	ConfigPath string

	// KeymapPath is the path to the YAML keymap file.
	KeymapPath string

	// MapPath is the map document to load on startup and the default
	// save target. Empty means start with a blank grid.
	MapPath string

	// PatternPath is the Lua pattern script bound to the pattern action.
	PatternPath string

	// LogLevel overrides the configured logging level when non-empty.
	LogLevel string

	// WatchConfig reloads the configuration file when it changes.
	WatchConfig bool

	// Logger overrides the default stderr logger.
	Logger *Logger
}

// New creates an application driving the given backend.
func New(b backend.Backend, opts Options) (*Application, error) {
	app := &Application{
		backend: b,
		mouse:   input.NewMouse(),
		metrics: NewMetrics(),
		opts:    opts,
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg
	app.palette = cfg.UI.Palette

	// 2. Logger
	level := ParseLogLevel(cfg.Logging.Level)
	if app.opts.LogLevel != "" {
		level = ParseLogLevel(app.opts.LogLevel)
	}
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
	} else {
		app.logger = NewLogger(level, nil)
	}

	// 3. Key bindings
	app.bindings, err = config.LoadKeymap(app.opts.KeymapPath)
	if err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	// 4. Grid engine
	app.engine = engine.New(
		engine.WithRows(cfg.Grid.Rows),
		engine.WithCols(cfg.Grid.Cols),
		engine.WithCellSize(cfg.Grid.CellSize),
		engine.WithMaxHistoryEntries(cfg.History.MaxEntries),
	)
	app.docID = uuid.New()

	// 5. Map document, when one was given
	if app.opts.MapPath != "" {
		app.mapPath = app.opts.MapPath
		if doc, err := store.LoadFile(app.opts.MapPath); err != nil {
			// A missing or bad map is not fatal; start blank and say so.
			app.logger.Warn("map load failed: %v", err)
			app.message = "load failed: " + app.opts.MapPath
		} else {
			app.docID = doc.ID
			app.engine.ReplaceAll("load "+app.opts.MapPath, doc.Rows, doc.Cols, doc.CellSize, doc.Cells)
			app.message = "loaded " + app.opts.MapPath
		}
	}

	// 6. Renderer
	app.renderer = renderer.New(app.backend,
		renderer.WithGridDots(cfg.UI.GridDots),
	)

	// 7. Configuration watcher
	if app.opts.WatchConfig && app.opts.ConfigPath != "" {
		app.watcher, err = config.Watch(app.opts.ConfigPath, app.queueConfig)
		if err != nil {
			// Watching is best-effort; the editor works without it.
			app.logger.Warn("config watch failed: %v", err)
			app.watcher = nil
		}
	}

	app.logger.Info("initialized %dx%d grid", app.engine.Rows(), app.engine.Cols())
	return nil
}

// queueConfig stores a reloaded configuration and wakes the event loop.
// Called from the watcher goroutine.
func (app *Application) queueConfig(cfg config.Config) {
	app.pendingMu.Lock()
	app.pending = &cfg
	app.pendingMu.Unlock()
	app.backend.PostEvent(backend.Event{Type: backend.EventNone})
}

// applyPendingConfig applies a queued configuration reload, if any.
func (app *Application) applyPendingConfig() {
	app.pendingMu.Lock()
	cfg := app.pending
	app.pending = nil
	app.pendingMu.Unlock()

	if cfg == nil {
		return
	}

	app.mu.Lock()
	app.cfg = *cfg
	app.palette = cfg.UI.Palette
	if app.paintIdx >= len(app.palette) {
		app.paintIdx = 0
	}
	app.mu.Unlock()

	app.renderer.SetGridDots(cfg.UI.GridDots)
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	}
	app.logger.Info("configuration reloaded")
}

// Engine returns the grid engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the application metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Running reports whether the event loop is active.
func (app *Application) Running() bool {
	return app.running.Load()
}

// paintRecord returns the record the next toggle or paint will write.
func (app *Application) paintRecord() engine.Record {
	app.mu.Lock()
	defer app.mu.Unlock()

	rec := engine.Record{Outline: app.outline}
	if len(app.palette) > 0 {
		rec.Color = app.palette[app.paintIdx]
	}
	return rec
}

// paintColor returns the current palette color for the status line.
func (app *Application) paintColor() core.Color {
	app.mu.Lock()
	defer app.mu.Unlock()

	if len(app.palette) == 0 {
		return core.Color{Default: true}
	}
	c, err := core.ParseHex(app.palette[app.paintIdx])
	if err != nil {
		return core.Color{Default: true}
	}
	return c
}

// cyclePalette advances the paint color by delta, wrapping around.
func (app *Application) cyclePalette(delta int) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if len(app.palette) == 0 {
		return
	}
	app.paintIdx = (app.paintIdx + delta + len(app.palette)) % len(app.palette)
}

// setMessage replaces the transient status line message.
func (app *Application) setMessage(msg string) {
	app.mu.Lock()
	app.message = msg
	app.mu.Unlock()
}

// statusMessage returns the current transient message.
func (app *Application) statusMessage() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.message
}

// Close releases resources outside the backend's lifecycle.
func (app *Application) Close() error {
	if app.watcher != nil {
		return app.watcher.Close()
	}
	return nil
}
