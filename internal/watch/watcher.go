// Package watch re-runs a callback whenever a single file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeFunc is invoked after the watched file settles.
type ChangeFunc func() error

// Watcher observes the directory holding a file so that editors which
// replace files by rename are still noticed.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange ChangeFunc
	logger   *slog.Logger

	debounce time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	// runMu serializes callbacks fired by overlapping timers.
	runMu sync.Mutex
}

// New starts observing path; changes are only delivered once Run is called.
func New(path string, debounce time.Duration, logger *slog.Logger, onChange ChangeFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fw,
		onChange: onChange,
		logger:   logger,
		debounce: debounce,
	}, nil
}

// Run blocks until ctx is done or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		_ = w.watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Watcher detected change", "file", event.Name, "op", event.Op.String())
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}

// schedule debounces rapid successive writes into one callback.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.runMu.Lock()
		defer w.runMu.Unlock()
		if err := w.onChange(); err != nil {
			w.logger.Error("Regeneration failed", "file", w.path, "error", err)
		}
	})
}
