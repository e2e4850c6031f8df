package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long a path must stay quiet before it is emitted
const DefaultSettle = 500 * time.Millisecond

// WatchConfig controls watch-mode discovery
type WatchConfig struct {
	// Settle is the quiet interval a file must pass before it is emitted,
	// guarding against files picked up while still being written
	Settle time.Duration

	// IncludeExisting emits the files already present in the directory
	// before new arrivals are watched for
	IncludeExisting bool
}

// Watcher emits eligible files as they appear in a directory
// It keeps emitting until its context is cancelled; each path is emitted at
// most once per watch, so rewrites of an already-processed file are ignored
type Watcher struct {
	dir    string
	filter *Filter
	config WatchConfig
	logger *slog.Logger
}

// NewWatcher creates a watcher over dir using the given filter
func NewWatcher(dir string, filter *Filter, config WatchConfig, logger *slog.Logger) *Watcher {
	if config.Settle <= 0 {
		config.Settle = DefaultSettle
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		dir:    dir,
		filter: filter,
		config: config,
		logger: logger,
	}
}

// Items watches the directory and emits each new file once it has settled
// Cancelling the context is the normal way to end a watch; Items then
// returns nil so the surrounding run finishes cleanly
func (w *Watcher) Items(ctx context.Context, emit func(name, path string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating filesystem watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	session := &watchSession{
		filter:  w.filter,
		logger:  w.logger,
		settle:  w.config.Settle,
		emit:    emit,
		pending: make(map[string]*time.Timer),
		emitted: make(map[string]bool),
	}
	defer session.close()

	if w.config.IncludeExisting {
		scanner := NewScanner(w.dir, w.filter, w.logger)
		if err := scanner.Items(ctx, session.deliverExisting); err != nil {
			return err
		}
	}

	w.logger.Info("watching for new files",
		"dir", w.dir,
		"settle", w.config.Settle)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			session.handle(event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("filesystem watch error", "error", err)
		}
	}
}

// watchSession holds the per-watch debounce state
// All emissions happen with mu held and closed checked, so once close has
// run no emission can race past the end of Items
type watchSession struct {
	filter *Filter
	logger *slog.Logger
	settle time.Duration
	emit   func(name, path string)

	mu      sync.Mutex
	closed  bool
	pending map[string]*time.Timer
	emitted map[string]bool
}

// handle debounces one filesystem event
// Each eligible create or write resets the path's settle timer; the timer
// that finally fires delivers the file
func (s *watchSession) handle(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if !s.filter.Eligible(filepath.Base(path)) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.emitted[path] {
		return
	}

	if timer, exists := s.pending[path]; exists {
		timer.Stop()
	}
	s.pending[path] = time.AfterFunc(s.settle, func() {
		s.deliver(path)
	})
}

// deliver emits a settled path after re-checking that it still points at a
// regular file
func (s *watchSession) deliver(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, path)
	if s.closed || s.emitted[path] {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Debug("settled file vanished", "path", path)
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	s.emitted[path] = true
	s.logger.Debug("file settled", "path", path)
	s.emit(filepath.Base(path), path)
}

// deliverExisting emits a file found by the initial scan and marks it so a
// trailing filesystem event cannot emit it again
func (s *watchSession) deliverExisting(name, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.emitted[path] {
		return
	}

	s.emitted[path] = true
	s.emit(name, path)
}

// close stops every pending timer and bars further emissions
func (s *watchSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for _, timer := range s.pending {
		timer.Stop()
	}
}
