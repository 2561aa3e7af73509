// Package catalogwatch invalidates the cached catalog when its file changes.
package catalogwatch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before onChange fires.
const DefaultDebounce = 250 * time.Millisecond

// Stats counts watcher activity.
type Stats struct {
	Events    int
	Reloads   int
	Errors    int
	LastEvent time.Time
}

// Watcher observes a single catalog file. It watches the parent directory so
// editors that replace the file on save are still seen.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	dir         string
	onChange    func()
	logger      *zap.Logger
	debounceDur time.Duration
	tick        time.Duration
	pending     time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	stats       Stats
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounceDur = d
		}
	}
}

// New creates a watcher for path. onChange runs on the watcher goroutine.
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("catalogwatch: path is required")
	}
	if onChange == nil {
		return nil, errors.New("catalogwatch: onChange is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:     fw,
		path:        abs,
		dir:         filepath.Dir(abs),
		onChange:    onChange,
		logger:      zap.NewNop(),
		debounceDur: DefaultDebounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	w.tick = w.debounceDur / 2
	if w.tick <= 0 {
		w.tick = time.Millisecond
	}
	return w, nil
}

// Path returns the absolute file being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start registers the directory and launches the event loop. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Unlock()
		return err
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("watching catalog", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the fsnotify handle. Safe to call
// more than once and after the context was cancelled.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("close catalog watcher", zap.Error(err))
	}
}

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug("catalog file event", zap.String("op", event.Op.String()))

	w.mu.Lock()
	now := time.Now()
	w.pending = now
	w.stats.Events++
	w.stats.LastEvent = now
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.stats.Reloads++
	w.mu.Unlock()

	w.logger.Info("catalog changed", zap.String("path", w.path))
	w.onChange()
}
