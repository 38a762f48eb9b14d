package store

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceDelay = 100 * time.Millisecond

// Watcher reloads a Store when its backing file changes on disk. Editors
// tend to fire several events per save, so reloads are debounced.
type Watcher struct {
	store  *Store
	logger zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the given store.
func NewWatcher(store *Store, logger zerolog.Logger) *Watcher {
	return &Watcher{store: store, logger: logger}
}

// Run watches the store file's directory until ctx is canceled. The
// directory rather than the file is watched because editors replace files
// on save, which would drop a watch on the file itself.
func (w *Watcher) Run(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error().Err(err).Msg("store watcher: failed to create watcher")
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(w.store.Path())
	if err := watcher.Add(dir); err != nil {
		w.logger.Error().Err(err).Str("dir", dir).Msg("store watcher: failed to watch directory")
		return
	}
	base := filepath.Base(w.store.Path())
	w.logger.Debug().Str("file", w.store.Path()).Msg("store watcher: watching")

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("store watcher: watch error")
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	if err := w.store.Reload(); err != nil {
		// Keep serving the previous entries; a half-saved or corrupted
		// file must not take the daemon down.
		w.logger.Error().Err(err).Msg("store watcher: reload failed, keeping previous entries")
		return
	}
	w.logger.Info().Int("entries", w.store.Len()).Msg("store watcher: reloaded")
}
