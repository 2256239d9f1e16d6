package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the freshly loaded configuration after the
// watched file changes. Loads that fail validation are dropped silently;
// the previous configuration stays in effect.
type Handler func(Config)

// Watcher reloads the config file on change.
//
// Editors that rename-and-replace on save emit remove/rename events, so
// the watcher watches the file's directory and filters by name. Rapid
// event bursts are debounced.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	handler  Handler
	debounce time.Duration

	closeOnce sync.Once
	closeCh   chan struct{}
	doneWg    sync.WaitGroup
}

// Watch starts watching the config file at path and calls handler on each
// successful reload. Close stops the watcher.
func Watch(path string, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		watcher:  fsw,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.doneWg.Wait()
	})
	return err
}

// loop consumes fsnotify events until closed.
func (w *Watcher) loop() {
	defer w.doneWg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal for the editor; the current
			// configuration stays in effect.
		}
	}
}

// reload loads the file and hands valid configs to the handler.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		return
	}
	w.handler(cfg)
}
