package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// OptionsWatcher reports changes to a single options file. Events are
// coalesced into a one-slot channel so the game loop can drain it from
// Update without blocking the watcher goroutine.
type OptionsWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
}

// NewOptionsWatcher starts watching path. The parent directory is watched
// so editors that save by rename are still seen.
func NewOptionsWatcher(path string) (*OptionsWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0755); err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &OptionsWatcher{
		path:    abs,
		watcher: watcher,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *OptionsWatcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: options watcher error: %v", err)
		}
	}
}

// Changed reports whether the file changed since the last call
func (w *OptionsWatcher) Changed() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Close stops the watcher
func (w *OptionsWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
