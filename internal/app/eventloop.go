package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/gridstorm/internal/engine/history"
	"github.com/dshills/gridstorm/internal/input"
	"github.com/dshills/gridstorm/internal/renderer"
	"github.com/dshills/gridstorm/internal/renderer/backend"
	"github.com/dshills/gridstorm/internal/script"
	"github.com/dshills/gridstorm/internal/store"
)

// DefaultMapPath is the save target when no map file was given.
const DefaultMapPath = "grid.json"

// Run initializes the backend and drives the event loop until a quit
// action arrives or the backend fails.
func (app *Application) Run() error {
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.backend.EnableMouse()
	defer app.backend.DisableMouse()

	app.running.Store(true)
	defer app.running.Store(false)

	app.render()

	for {
		ev := app.backend.PollEvent()
		app.metrics.RecordEvent()
		app.applyPendingConfig()

		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("shutting down")
				return nil
			}
			return err
		}

		app.render()
	}
}

// Stop asks a running event loop to exit. Safe from any goroutine.
func (app *Application) Stop() {
	app.backend.PostEvent(backend.Event{
		Type: backend.EventKey,
		Key:  backend.KeyEscape,
	})
}

// render draws one frame.
func (app *Application) render() {
	start := time.Now()
	app.renderer.Render(app.engine, renderer.Status{
		PaintColor: app.paintColor(),
		Message:    app.statusMessage(),
	})
	app.metrics.RecordFrame(time.Since(start))
}

// handleEvent routes one terminal event. Returns ErrQuit on a quit action.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
		return nil
	case backend.EventResize:
		// The next render picks up the new size.
		return nil
	default:
		return nil
	}
}

// handleKey resolves a key event to an action and dispatches it.
func (app *Application) handleKey(ev backend.Event) error {
	action, ok := app.bindings.Resolve(ev)
	if !ok {
		return nil
	}
	return app.dispatch(action)
}

// dispatch executes one editor action.
func (app *Application) dispatch(action input.Action) error {
	switch action {
	case input.ActionQuit:
		return ErrQuit

	case input.ActionUndo:
		// The label and kind describe the entry being undone, so read
		// them before the pointer moves.
		label := app.engine.CurrentLabel()
		kind := app.engine.CurrentKind()
		if app.engine.Undo() {
			app.metrics.RecordUndo()
			if kind == history.EntryClear {
				app.setMessage(fmt.Sprintf("undid %s, %d cells restored", label, app.engine.ActiveCount()))
			} else {
				app.setMessage("undid " + label)
			}
		}

	case input.ActionRedo:
		if app.engine.Redo() {
			app.metrics.RecordRedo()
			app.setMessage("redid " + app.engine.CurrentLabel())
		}

	case input.ActionFill:
		app.engine.FillEnclosed(app.paintRecord())
		app.metrics.RecordEdit()
		app.setMessage("")

	case input.ActionClear:
		app.engine.ClearAll()
		app.metrics.RecordEdit()
		app.setMessage("")

	case input.ActionColorNext:
		app.cyclePalette(1)

	case input.ActionColorPrev:
		app.cyclePalette(-1)

	case input.ActionOutlineToggle:
		app.mu.Lock()
		app.outline = !app.outline
		app.mu.Unlock()

	case input.ActionRowsInc:
		app.engine.Resize(app.engine.Rows()+1, app.engine.Cols())

	case input.ActionRowsDec:
		app.engine.Resize(app.engine.Rows()-1, app.engine.Cols())

	case input.ActionColsInc:
		app.engine.Resize(app.engine.Rows(), app.engine.Cols()+1)

	case input.ActionColsDec:
		app.engine.Resize(app.engine.Rows(), app.engine.Cols()-1)

	case input.ActionSave:
		app.saveMap()

	case input.ActionLoad:
		app.loadMap()

	case input.ActionPattern:
		app.runPattern()
	}

	return nil
}

// handleMouse applies a mouse event to the grid.
func (app *Application) handleMouse(ev backend.Event) {
	layout := renderer.NewLayout(app.engine.Rows(), app.engine.Cols(), app.engine.CellSize())
	coord, action := app.mouse.Handle(ev, layout)

	switch action {
	case input.MouseActionToggle:
		app.engine.ToggleCell(coord, app.paintRecord())
		app.metrics.RecordEdit()
	case input.MouseActionPaint:
		app.engine.PaintCell(coord, app.paintRecord())
		app.metrics.RecordEdit()
	}
}

// saveMap writes the current grid to the active map file.
func (app *Application) saveMap() {
	path := app.mapPath
	if path == "" {
		path = DefaultMapPath
		app.mapPath = path
	}

	doc := store.Document{
		ID:       app.docID,
		Rows:     app.engine.Rows(),
		Cols:     app.engine.Cols(),
		CellSize: app.engine.CellSize(),
		Cells:    app.engine.EnumerateActive(),
	}
	if err := store.Save(path, doc); err != nil {
		app.logger.Error("save failed: %v", err)
		app.setMessage("save failed")
		return
	}
	app.logger.Info("saved %d cells to %s", len(doc.Cells), path)
	app.setMessage("saved " + path)
}

// loadMap re-reads the active map file into the grid as one undo step.
func (app *Application) loadMap() {
	path := app.mapPath
	if path == "" {
		app.setMessage("no map file")
		return
	}

	doc, err := store.LoadFile(path)
	if err != nil {
		app.logger.Error("load failed: %v", err)
		app.setMessage("load failed")
		return
	}

	app.docID = doc.ID
	app.engine.ReplaceAll("load "+path, doc.Rows, doc.Cols, doc.CellSize, doc.Cells)
	app.metrics.RecordEdit()
	app.logger.Info("loaded %d cells from %s", len(doc.Cells), path)
	app.setMessage("loaded " + path)
}

// runPattern executes the configured pattern script and stamps its
// output onto the grid as one undo step.
func (app *Application) runPattern() {
	if app.opts.PatternPath == "" {
		app.setMessage("no pattern script")
		return
	}

	runner := script.NewRunner(app.engine.Rows(), app.engine.Cols())
	cells, err := runner.RunFile(app.opts.PatternPath)
	if err != nil {
		app.logger.Error("pattern failed: %v", err)
		app.setMessage("pattern failed")
		return
	}

	app.engine.StampCells("pattern "+app.opts.PatternPath, cells)
	app.metrics.RecordEdit()
	app.setMessage(fmt.Sprintf("pattern set %d cells", len(cells)))
}
