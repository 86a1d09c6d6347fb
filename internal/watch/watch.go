// Package watch drives full re-assembly runs from filesystem events.
// Every change burst triggers a complete rescan; there is no
// incremental tracking.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of root directories recursively and invokes a
// trigger after a debounced burst of changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New creates a watcher over roots. Roots that do not exist are
// skipped with a warning.
func New(roots []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	for _, root := range roots {
		if err := addDirsRecursive(fsw, root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return &Watcher{fsw: fsw, debounce: debounce}, nil
}

// Run blocks handling events until ctx is canceled, invoking onChange
// after each debounced change burst.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer func() { _ = w.fsw.Close() }()

	var mu sync.Mutex
	var timer *time.Timer
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, onChange)
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev, trigger)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event, trigger func()) {
	if shouldIgnore(ev.Name) {
		return
	}
	// New directories need to join the watch set.
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(w.fsw, ev.Name)
		}
	}
	slog.Debug("file change detected", "path", ev.Name, "op", ev.Op.String())
	trigger()
}

func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	switch {
	case strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".tmp"):
		return true
	}
	return false
}

func addDirsRecursive(fsw *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); err != nil {
		slog.Warn("watch root missing", "dir", root)
		return nil
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				slog.Warn("watch add failed", "dir", path, "error", err)
			}
		}
		return nil
	})
}
