package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/macropower/pagedots/pkg/log"
)

// Event is sent by a [Watcher] after the configuration file changed. Exactly
// one of Config and Err is set.
type Event struct {
	Config *Config
	Err    error
}

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	opts      []LoaderOpt
	listeners []chan<- Event
}

// NewWatcher creates a [Watcher] for the file at path. The parent directory
// is watched rather than the file itself, so that editors which replace the
// file on save are handled.
func NewWatcher(path string, opts ...LoaderOpt) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	err = watcher.Add(filepath.Dir(absPath))
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err),
			watcher.Close(),
		)
	}

	return &Watcher{
		watcher: watcher,
		path:    absPath,
		opts:    opts,
	}, nil
}

// Subscribe registers ch to receive reload events. It must be called before
// [Watcher.Run].
func (w *Watcher) Subscribe(ch chan<- Event) {
	w.listeners = append(w.listeners, ch)
}

// Run handles file system events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	logger := log.WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(evt.Name) != w.path {
				continue
			}

			// Ignore events that are not related to file content changes.
			if evt.Has(fsnotify.Chmod) || evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) {
				continue
			}

			logger.DebugContext(ctx, "config file changed",
				slog.String("event", evt.String()),
			)

			cfg, err := Load(w.path, w.opts...)
			if err != nil {
				logger.WarnContext(ctx, "reload config", slog.Any("error", err))
				w.broadcast(ctx, Event{Err: err})

				continue
			}

			w.broadcast(ctx, Event{Config: cfg})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.broadcast(ctx, Event{Err: fmt.Errorf("watch config: %w", err)})
		}
	}
}

func (w *Watcher) broadcast(ctx context.Context, evt Event) {
	for _, ch := range w.listeners {
		select {
		case ch <- evt:
		case <-ctx.Done():
			return
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}
