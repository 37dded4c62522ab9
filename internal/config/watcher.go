// internal/config/watcher.go
package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a configuration file and re-emits the parsed config on
// change, so long-running polling jobs can pick up selector edits without a
// restart. A reload that fails validation is logged and dropped; the previous
// configuration stays in effect.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	callbacks  []func(*ScrapeConfig)
	mu         sync.RWMutex
	stopped    bool
}

// NewWatcher creates a watcher for the given configuration file.
func NewWatcher(configPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:    watcher,
		configPath: configPath,
		callbacks:  make([]func(*ScrapeConfig), 0),
	}

	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}

	// Watch the directory as well (for editors that create temp files)
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		log.Printf("Warning: failed to watch config directory: %v", err)
	}

	go w.watch()

	return w, nil
}

// OnChange registers a callback invoked with each successfully reloaded config.
func (w *Watcher) OnChange(callback func(*ScrapeConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// watch handles file system events
func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name == w.configPath && (event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create) {
				w.handleChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}

// handleChange reloads the file and fans the config out to callbacks
func (w *Watcher) handleChange() {
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return
	}
	callbacks := make([]func(*ScrapeConfig), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	config, err := LoadFromFile(w.configPath)
	if err != nil {
		log.Printf("Failed to reload config: %v", err)
		return
	}

	for _, callback := range callbacks {
		callback(config)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	return w.watcher.Close()
}
