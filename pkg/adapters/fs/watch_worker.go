package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/inikit/pkg/core"
)

// debounceWindow coalesces the bursts editors and atomic renames produce.
const debounceWindow = 50 * time.Millisecond

// Watch reports external changes to the repository file.
//
// The parent directory is watched so that atomic replacements (rename over
// the file) are seen. Events for other files and our own temp files are
// ignored. Bursts within debounceWindow collapse into their last event.
// The returned channel is closed when ctx is done.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, r.config.EventBuffer)
	w := &watchWorker{repo: r, watcher: watcher, events: events}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "path", r.Path, "error", err)
	}))

	return events, nil
}

type watchWorker struct {
	repo    *Repository
	watcher *fsnotify.Watcher
	events  chan core.Event
}

// run is the main event loop. It owns the watcher and the events channel.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.repo.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending *core.Event
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.mapEvent(event)
			if !ok {
				continue
			}
			logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			pending = &e
			timer.Reset(debounceWindow)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case w.events <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// mapEvent keeps only events about the repository file and translates them.
func (w *watchWorker) mapEvent(event fsnotify.Event) (core.Event, bool) {
	name := filepath.Clean(event.Name)
	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	if name != w.repo.Path || strings.HasPrefix(filepath.Base(name), TempFilePrefix) {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create):
		t = core.EventCreate
	case event.Has(fsnotify.Write):
		t = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}
	return core.Event{Type: t, Path: w.repo.Path, Timestamp: time.Now().Unix()}, true
}
