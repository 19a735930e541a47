package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

const defaultDebounce = 200 * time.Millisecond

// ChangeCallback is called after a successful reload.
type ChangeCallback func(oldConfig, newConfig *Config)

// Watcher reloads a config file when it changes. The containing directory
// is watched so that editors replacing the file atomically are seen too.
type Watcher struct {
	path     string
	logger   *zap.Logger
	debounce time.Duration

	mu        sync.RWMutex
	config    *Config
	callbacks []ChangeCallback

	fs       *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopErr  error
}

// NewWatcher loads path and prepares a watcher for it. A nil logger
// discards the watcher's own diagnostics.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := Load(abs)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		path:     abs,
		logger:   logger.With(zap.String("config", abs)),
		debounce: defaultDebounce,
		config:   cfg,
		fs:       fs,
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce changes how long a burst of events is coalesced. Call it
// before Start.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Config returns the most recently loaded configuration.
func (w *Watcher) Config() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

// OnChange registers cb for future reloads.
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, cb)
	w.mu.Unlock()
}

// FollowSeverity keeps the process threshold in sync with the file.
func (w *Watcher) FollowSeverity() {
	w.OnChange(func(_, cfg *Config) {
		if sev, err := cfg.Severity(); err == nil {
			prev := xgxdiag.SetMinSeverity(sev)
			if prev != sev {
				w.logger.Info("min severity changed", zap.Stringer("from", prev), zap.Stringer("to", sev))
			}
		}
	})
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.fs.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop ends watching and waits for the watch goroutine to exit. Later
// calls return the first call's result.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopErr = w.fs.Close()
		w.wg.Wait()
	})
	return w.stopErr
}

// Reload re-reads the file now.
func (w *Watcher) Reload() error {
	cfg, err := Load(w.path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	old := w.config
	w.config = cfg
	cbs := append([]ChangeCallback(nil), w.callbacks...)
	w.mu.Unlock()

	for _, cb := range cbs {
		cb(old, cfg)
	}
	return nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.Reload(); err != nil {
				w.logger.Warn("config reload failed; keeping previous settings", zap.Error(err))
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}
