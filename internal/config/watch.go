package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// SettingsWatcher calls a function whenever the settings file changes on disk.
type SettingsWatcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	onChange  func()
	done      chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// WatchSettings starts watching path. The parent directory is watched so
// that editors replacing the file via rename are noticed. onChange runs on
// a timer goroutine after events settle.
func WatchSettings(path string, onChange func()) (*SettingsWatcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &SettingsWatcher{
		fsWatcher: fsWatcher,
		path:      filepath.Clean(path),
		onChange:  onChange,
		done:      make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Close stops the watcher. Pending notifications are dropped.
func (w *SettingsWatcher) Close() error {
	close(w.done)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsWatcher.Close()
}

func (w *SettingsWatcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Settings watcher error: %v", err)
		}
	}
}

func (w *SettingsWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers editors that write a temp file and move it into place.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		select {
		case <-w.done:
		default:
			w.onChange()
		}
	})
}
