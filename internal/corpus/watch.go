package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"docsim/internal/logging"
)

// DefaultDebounce is how long Watch waits for a burst of file events to settle.
const DefaultDebounce = 250 * time.Millisecond

// WatchFunc receives each freshly loaded corpus, or the error that prevented
// loading it. Returning an error stops the watch.
type WatchFunc func(ctx context.Context, docs []Document, err error) error

// Watch loads dir once, then again after every settled burst of changes to
// matching files, calling fn each time the corpus content differs from the
// last successful load. It returns when ctx is done, when fn
// returns an error, or when the watcher fails.
func Watch(ctx context.Context, dir string, opts Options, debounce time.Duration, logger *slog.Logger, fn WatchFunc) error {
	logger = logging.NewComponentLogger(logger, "corpus")
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}
	logger.Info("watching input directory", logging.String("dir", dir))

	var last string
	reload := func() error {
		docs, err := LoadDir(ctx, dir, opts)
		if err == nil {
			fingerprint := Fingerprint(docs)
			if fingerprint == last {
				logger.Debug("input unchanged, skipping run")
				return nil
			}
			last = fingerprint
		} else {
			last = ""
		}
		return fn(ctx, docs, err)
	}
	if err := reload(); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, opts) {
				continue
			}
			logger.Debug("input changed",
				logging.String("file", filepath.Base(event.Name)),
				logging.String("op", event.Op.String()),
			)
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %q: %w", dir, err)
		case <-timer.C:
			if err := reload(); err != nil {
				return err
			}
		}
	}
}

func relevant(event fsnotify.Event, opts Options) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return opts.matches(filepath.Base(event.Name))
}
