// Package watch re-runs a cook whenever a settings file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a single file.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	log      *zap.Logger
	Debounce time.Duration
}

// New starts watching path. The parent directory is watched so that
// editors which replace the file on save are still seen.
func New(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		fs:       fsw,
		log:      log,
		Debounce: DefaultDebounce,
	}, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run calls fn once, then again after every change to the file, until ctx
// is done. A change cancels the context passed to the in-flight call and
// waits for it to return before starting the next one, so calls never
// overlap.
func (w *Watcher) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	start := func() {
		cctx, c := context.WithCancel(ctx)
		d := make(chan struct{})
		cancel, done = c, d
		go func() {
			defer close(d)
			if err := fn(cctx); err != nil && !errors.Is(err, context.Canceled) {
				w.log.Warn("rebuild failed", zap.String("path", w.path), zap.Error(err))
			}
		}()
	}
	stop := func() {
		if cancel != nil {
			cancel()
			<-done
			cancel = nil
		}
	}
	defer stop()

	// nil until a change is pending
	var debounce <-chan time.Time

	start()

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("settings changed", zap.String("path", e.Name), zap.Stringer("op", e.Op))
			debounce = time.After(w.Debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", zap.Error(err))

		case <-debounce:
			debounce = nil
			stop()
			start()

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
