// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/logger"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches files for writes. Parent directories are watched rather
// than the files themselves so editors that save by rename are still seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	log      *zap.Logger
}

// New creates a watcher for the given files.
func New(paths ...string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fs:       fsWatch,
		files:    make(map[string]struct{}, len(paths)),
		debounce: DefaultDebounce,
		log:      logger.Named("watch"),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatch.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatch.Add(dir); err != nil {
			fsWatch.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// SetDebounce changes the settle delay. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run calls onChange with the absolute path of every watched file that was
// created or written, once per settled burst, until ctx is done. Changed
// paths within a burst are delivered in sorted order. Run closes the
// watcher when it returns.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.fs.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if _, tracked := w.files[filepath.Clean(e.Name)]; !tracked {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			w.log.Debug("file changed", zap.String("path", e.Name), zap.Stringer("op", e.Op))
			pending[filepath.Clean(e.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)
			for _, p := range changed {
				onChange(p)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.Warn("event queue overflowed, changes may be missed")
				continue
			}
			return fmt.Errorf("watch: %w", err)

		case <-ctx.Done():
			return nil
		}
	}
}
