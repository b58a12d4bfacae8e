package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/prism-engine/prism/engine/core"
)

// Watcher re-reads the config file whenever it changes on disk and
// delivers the parsed result. Invalid intermediate states (editors often
// truncate before writing) are logged and skipped.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	updates  chan *Config
	done     chan struct{}
}

func Watch(path string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors that save via rename replace the
	// file node, which a file-level watch would lose.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsnotify: fsWatch,
		updates:  make(chan *Config, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates delivers the latest successfully parsed config. Only the most
// recent unconsumed update is retained.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsnotify.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("config reload skipped: %v", err)
				continue
			}
			// Drop the stale update if nobody consumed it yet.
			select {
			case <-w.updates:
			default:
			}
			w.updates <- cfg
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogWarn("config watcher: %v", err)
		}
	}
}
