// Package watch turns filesystem events into generation requests.
//
// The engine watches project directories for catalogue assets and project
// configuration. Catalogue writes are debounced per path and dispatched as
// mutually independent generations; a failing asset never stops the engine
// or other assets. Configuration changes only affect future generations and
// produce no output by themselves.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/intlwrap/intlwrap/config"
	"github.com/intlwrap/intlwrap/errors"
	"github.com/intlwrap/intlwrap/gen"
)

const debouncePeriod = 300 * time.Millisecond

// Directories never containing catalogue sources.
var skippedDirs = map[string]bool{
	".git":       true,
	".dart_tool": true,
	"build":      true,
}

// Engine watches roots and regenerates wrappers as catalogues change.
type Engine struct {
	generator *gen.Generator
	log       *zap.SugaredLogger
	roots     []string
	watcher   *fsnotify.Watcher

	// opts is re-resolved when project configuration changes; each
	// generation takes a copy under mu.
	mu   sync.Mutex
	opts config.Options

	timerMu sync.Mutex
	timers  map[string]*time.Timer
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates an engine watching the given root directories.
func NewEngine(generator *gen.Generator, roots []string, log *zap.SugaredLogger) (*Engine, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		generator: generator,
		log:       log,
		roots:     roots,
		watcher:   watcher,
		timers:    make(map[string]*time.Timer),
		ctx:       ctx,
		cancel:    cancel,
	}

	for _, root := range roots {
		if err := e.addTree(root); err != nil {
			watcher.Close()
			cancel()
			return nil, err
		}
	}

	if err := e.ReloadOptions(); err != nil {
		// Degraded options are still usable; keep going.
		log.Warnw("Configuration unavailable, using defaults", "error", err)
	}

	return e, nil
}

// Start begins processing filesystem events.
func (e *Engine) Start() {
	e.wg.Add(1)
	go e.loop()
	e.log.Infow("Watch engine started", "roots", e.roots)
}

// Stop shuts the engine down and waits for in-flight generations.
func (e *Engine) Stop() {
	e.cancel()

	// Pending debounce timers must not dispatch once the wait begins.
	e.timerMu.Lock()
	e.closed = true
	for _, timer := range e.timers {
		timer.Stop()
	}
	e.timerMu.Unlock()

	e.watcher.Close()
	e.wg.Wait()
	e.log.Infow("Watch engine stopped")
}

// ReloadOptions re-resolves project configuration from the first root.
// Called on startup and whenever a configuration asset changes.
func (e *Engine) ReloadOptions() error {
	start := "."
	if len(e.roots) > 0 {
		start = e.roots[0]
	}

	opts, err := config.Resolve(start)
	e.mu.Lock()
	e.opts = opts
	e.mu.Unlock()
	return err
}

// Options returns the currently resolved generation options.
func (e *Engine) Options() config.Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// addTree registers dir and every subdirectory with the watcher.
func (e *Engine) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := e.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
		return nil
	})
}

func (e *Engine) loop() {
	defer e.wg.Done()

	for {
		select {
		case <-e.ctx.Done():
			return

		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleEvent(event)

		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			e.log.Warnw("Watcher error", "error", err)
		}
	}
}

func (e *Engine) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	// Newly created directories join the watch tree.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := e.addTree(event.Name); err != nil {
				e.log.Warnw("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	switch {
	case isConfigAsset(event.Name):
		// Secondary trigger: configuration affects future generations but
		// produces no output by itself.
		e.debounce("config:"+event.Name, func() {
			if err := e.ReloadOptions(); err != nil {
				e.log.Warnw("Configuration reload degraded to defaults", "error", err)
				return
			}
			e.log.Infow("Configuration reloaded", "path", event.Name)
		})

	case gen.IsCatalogue(event.Name):
		// Wrapper outputs never match the catalogue suffix, so a
		// generation cannot retrigger itself.
		e.log.Debugw("Catalogue changed", "path", event.Name, "op", event.Op.String())
		e.debounce(event.Name, func() {
			e.timerMu.Lock()
			if e.closed {
				e.timerMu.Unlock()
				return
			}
			e.wg.Add(1)
			e.timerMu.Unlock()
			go e.generate(event.Name)
		})
	}
}

// debounce coalesces rapid successive events for the same key.
func (e *Engine) debounce(key string, fn func()) {
	e.timerMu.Lock()
	defer e.timerMu.Unlock()

	if timer, ok := e.timers[key]; ok {
		timer.Stop()
	}
	e.timers[key] = time.AfterFunc(debouncePeriod, fn)
}

// generate runs one isolated generation for path.
func (e *Engine) generate(path string) {
	defer e.wg.Done()

	text, err := os.ReadFile(path)
	if err != nil {
		e.log.Errorw("Failed to read catalogue", "path", path, "error", err)
		return
	}

	req := gen.Request{InputPath: path, InputText: text, Options: e.Options()}
	if _, err := e.generator.Run(e.ctx, req); err != nil {
		if errors.IsSkip(err) {
			e.log.Debugw("No message class, skipping", "path", path)
			return
		}
		e.log.Errorw("Generation failed", "path", path, "error", err)
	}
}

func isConfigAsset(path string) bool {
	base := filepath.Base(path)
	return base == "intlwrap.yaml" || base == "l10n.yaml"
}
