package convert

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/transmute-dev/transmute/catalog"
	"github.com/transmute-dev/transmute/errors"
	"github.com/transmute-dev/transmute/logger"
)

// Watcher reconverts source files as they change on disk. Editor save
// storms are tamed twice: a per-file debounce window and a global rate
// limit across the watched tree.
type Watcher struct {
	engine *Engine
	target string

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates a watcher converting to the given target.
func NewWatcher(engine *Engine, target string) *Watcher {
	return &Watcher{
		engine:  engine,
		target:  target,
		pending: make(map[string]*time.Timer),
	}
}

// Watch blocks converting files under dir until the context is canceled.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating filesystem watcher")
	}
	defer fsw.Close()

	if err := fsw.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}

	cfg := w.engine.cfg.Watch
	debounce := time.Duration(cfg.DebounceMS) * time.Millisecond
	limiter := rate.NewLimiter(rate.Limit(cfg.MaxPerSecond), 1)

	logger.Infow("watching for changes",
		logger.FieldFile, dir,
		logger.FieldTarget, w.target)

	for {
		select {
		case <-ctx.Done():
			w.drainTimers()
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.convertible(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name, debounce, limiter)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("watcher error", logger.FieldError, err)
		}
	}
}

// convertible filters events down to parseable source files, skipping
// whatever the engine itself just wrote.
func (w *Watcher) convertible(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	lang, ok := catalog.GetByExtension(filepath.Ext(path))
	return ok && lang.ID == sourceLanguage
}

// schedule arms (or re-arms) the debounce timer for one file.
func (w *Watcher) schedule(ctx context.Context, path string, debounce time.Duration, limiter *rate.Limiter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if err := limiter.Wait(ctx); err != nil {
			return
		}
		if _, err := w.engine.ConvertFile(path, w.target); err != nil {
			logger.Errorw("reconversion failed",
				logger.FieldFile, path,
				logger.FieldError, err)
		}
	})
}

func (w *Watcher) drainTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}
