package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a config file when it changes on disk and hands each
// successfully loaded Config to a callback. A file that becomes invalid is
// logged and skipped; the previous good config stays in effect.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce *debouncer
	done     chan struct{}
}

// Watch starts watching path. onReload is called from a background goroutine;
// callers inside a bubbletea program should forward through Program.Send.
func Watch(path string, onReload func(Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		fsw:      fsw,
		debounce: newDebouncer(reloadDebounce),
		done:     make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) run(onReload func(Config)) {
	target := filepath.Clean(w.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			w.debounce.trigger(func() {
				cfg, err := Load(w.path)
				if err != nil {
					log.Printf("Warning: config reload skipped: %v", err)
					return
				}
				onReload(cfg)
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: config watcher: %v", err)
		}
	}
}

// Close stops watching and drops any pending reload.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.cancel()
	return w.fsw.Close()
}
