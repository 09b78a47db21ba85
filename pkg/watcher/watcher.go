package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one dataset file and fires a debounced callback when
// it changes. The parent directory is watched rather than the file
// itself, because editors and exporters typically replace the file
// (rename over it), which drops a direct watch.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce *Debouncer
	path     string
	done     chan struct{}
}

// Watch starts watching path and invokes onChange (debounced) after
// writes, creates, or renames of the file.
func Watch(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fw:       fw,
		debounce: NewDebouncer(debounce),
		path:     abs,
		done:     make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.matches(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Trigger(onChange)
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the viewer still has its
			// manual reload key.
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.path
}

// Close stops watching and cancels any pending callback.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fw.Close()
}
